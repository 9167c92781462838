package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// Пакет собирает HTML тела писем. Бизнес-логика передает уже
// подготовленные данные; здесь только верстка и темы писем.

// DisplayDateFormat формат дат в письмах ("Monday, January 2, 2006")
const DisplayDateFormat = "Monday, January 2, 2006"

// ShortDateFormat короткий формат для перечисления дат ("Jan 2")
const ShortDateFormat = "Jan 2"

// Org реквизиты организации, подставляемые в письма
type Org struct {
	Name           string
	Address        string
	Phone          string
	BaseURL        string
	DeliveryWindow string
}

// Builder собирает письма с реквизитами организации
type Builder struct {
	org Org
}

// NewBuilder создает новый Builder
func NewBuilder(org Org) *Builder {
	return &Builder{org: org}
}

// CancelURL возвращает публичную ссылку отмены для токена
func (b *Builder) CancelURL(token string) string {
	return fmt.Sprintf("%s/cancel/%s", b.org.BaseURL, token)
}

// ConfirmedDate одна подтвержденная дата в пакетном письме
type ConfirmedDate struct {
	Formatted string
	Location  string
	CancelURL string
}

// BatchConfirmationData данные письма-подтверждения пакетной заявки
type BatchConfirmationData struct {
	Name            string
	Bringing        string
	KidCountDisplay string
	Dates           []ConfirmedDate
	FirstDate       time.Time
}

// BatchConfirmation собирает тему и тело письма-подтверждения
func (b *Builder) BatchConfirmation(d BatchConfirmationData) (string, string, error) {
	count := len(d.Dates)
	plural := ""
	if count > 1 {
		plural = "s"
	}
	subject := fmt.Sprintf("Meal Sign-Ups Confirmed - %d date%s starting %s",
		count, plural, d.FirstDate.Format("January 2, 2006"))

	body, err := render(batchConfirmationTmpl, struct {
		BatchConfirmationData
		Org    Org
		Count  int
		Plural string
	}{d, b.org, count, plural})
	if err != nil {
		return "", "", err
	}

	return subject, body, nil
}

// ReminderData данные письма-напоминания за день до доставки
type ReminderData struct {
	Name            string
	FormattedDate   string
	Location        string
	Bringing        string
	KidCountDisplay string
	CancelURL       string
}

// Reminder собирает тему и тело письма-напоминания
func (b *Builder) Reminder(d ReminderData) (string, string, error) {
	subject := fmt.Sprintf("Reminder: Your Meal is Tomorrow - %s", d.FormattedDate)

	body, err := render(reminderTmpl, struct {
		ReminderData
		Org Org
	}{d, b.org})
	if err != nil {
		return "", "", err
	}

	return subject, body, nil
}

// SummaryRow строка таблицы доставок в дайджесте
type SummaryRow struct {
	Name     string
	Phone    string
	Email    string
	Bringing string
	Location string
}

// CancellationRow строка таблицы отмен в дайджесте
type CancellationRow struct {
	Name          string
	FormattedDate string
	Location      string
	Bringing      string
}

// OpenSlotRow свободный слот в прогнозе дайджеста
type OpenSlotRow struct {
	FormattedDate string
	Location      string
}

// DailySummaryData данные ежедневного дайджеста для персонала
type DailySummaryData struct {
	FormattedToday    string
	DayAfterHeading   string
	Today             []SummaryRow
	Tomorrow          []SummaryRow
	DayAfter          []SummaryRow
	Cancellations     []CancellationRow
	OpenSlots         []OpenSlotRow
}

// DailySummary собирает тему и тело ежедневного дайджеста
func (b *Builder) DailySummary(d DailySummaryData) (string, string, error) {
	subject := fmt.Sprintf("Daily Meal Summary - %s", d.FormattedToday)

	body, err := render(dailySummaryTmpl, struct {
		DailySummaryData
		Org Org
	}{d, b.org})
	if err != nil {
		return "", "", err
	}

	return subject, body, nil
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("mail: failed to render template %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

const emailStyles = `
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #e31837; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; }
    .highlight { background: white; padding: 15px; border-radius: 8px; margin: 15px 0; }
    .kidcount { background: #fff3cd; border: 2px solid #e31837; padding: 15px; border-radius: 8px; margin: 15px 0; text-align: center; }
    .btn { display: inline-block; background: #e31837; color: white; padding: 12px 24px; text-decoration: none; border-radius: 25px; margin-top: 15px; }
    .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; }
    th { padding: 8px; text-align: left; background: #f0f0f0; }
    td { padding: 8px; border-bottom: 1px solid #eee; }
`

var batchConfirmationTmpl = template.Must(template.New("batch_confirmation").Parse(`<!DOCTYPE html>
<html>
<head><style>` + emailStyles + `</style></head>
<body>
  <div class="container">
    <div class="header"><h1>Thank You, {{.Name}}!</h1></div>
    <div class="content">
      <p>Your meal sign-ups have been confirmed for {{.Org.Name}}. You've signed up for <strong>{{.Count}} date{{.Plural}}</strong>!</p>

      <div class="highlight"><p><strong>Bringing:</strong> {{.Bringing}}</p></div>

      <div class="highlight" style="padding: 0; overflow: hidden;">
        <table>
          <thead><tr><th>Date</th><th>Location</th><th></th></tr></thead>
          <tbody>
          {{range .Dates}}
            <tr>
              <td>{{.Formatted}}</td>
              <td>{{.Location}}</td>
              <td><a href="{{.CancelURL}}" style="color: #e31837;">Cancel</a></td>
            </tr>
          {{end}}
          </tbody>
        </table>
      </div>

      <div class="kidcount">
        <p style="margin: 0;"><strong>Please prepare meals for approximately</strong></p>
        <p style="margin: 8px 0; font-size: 32px; font-weight: bold; color: #e31837;">{{.KidCountDisplay}} children</p>
        <p style="margin: 0; font-size: 14px; color: #666;">per delivery</p>
      </div>

      <p>The kids and staff are looking forward to your meals! Please plan to deliver between {{.Org.DeliveryWindow}}.</p>
      <ul><li>If you wish to drop off early in the day, please include reheating instructions.</li></ul>
      <p>Need to cancel a date? Use the cancel links in the table above for each individual date.</p>
    </div>
    <div class="footer">
      <p>{{.Org.Name}}<br>{{.Org.Address}}<br>{{.Org.Phone}}</p>
    </div>
  </div>
</body>
</html>
`))

var reminderTmpl = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<head><style>` + emailStyles + `</style></head>
<body>
  <div class="container">
    <div class="header"><h1>Reminder: Your Meal is Tomorrow!</h1></div>
    <div class="content">
      <p>Hi {{.Name}},</p>
      <p>This is a friendly reminder that you're signed up to provide a meal tomorrow for {{.Org.Name}}.</p>

      <div class="highlight">
        <p><strong>Date:</strong> {{.FormattedDate}}</p>
        <p><strong>Location:</strong> {{.Location}}</p>
        <p><strong>Bringing:</strong> {{.Bringing}}</p>
      </div>

      <div class="kidcount">
        <p style="margin: 0;"><strong>Please prepare meals for approximately</strong></p>
        <p style="margin: 8px 0; font-size: 32px; font-weight: bold; color: #e31837;">{{.KidCountDisplay}} children</p>
        <p style="margin: 0; font-size: 14px; color: #666;">at the {{.Location}}</p>
      </div>

      <p><strong>Delivery Time:</strong> {{.Org.DeliveryWindow}}</p>
      <p><strong>Address:</strong> {{.Org.Address}}</p>
      <ul><li>If you wish to drop off early in the day, please include reheating instructions.</li></ul>

      <p>If you can no longer make it, please cancel as soon as possible so we can find a replacement:</p>
      <a href="{{.CancelURL}}" class="btn">Cancel My Sign-Up</a>
    </div>
    <div class="footer">
      <p>Thank you for supporting {{.Org.Name}}!<br>{{.Org.Phone}}</p>
    </div>
  </div>
</body>
</html>
`))

var dailySummaryTmpl = template.Must(template.New("daily_summary").Parse(`<!DOCTYPE html>
<html>
<head><style>` + emailStyles + `</style></head>
<body>
  <div class="container" style="max-width: 700px;">
    <div class="header">
      <h1 style="margin: 0;">Daily Meal Summary</h1>
      <p style="margin: 5px 0 0 0; font-size: 16px;">{{.FormattedToday}}</p>
    </div>
    <div class="content">
      {{define "signupTable"}}
        {{if .}}
          <table>
            <thead><tr><th>Name</th><th>Phone</th><th>Email</th><th>Bringing</th><th>Location</th></tr></thead>
            <tbody>
            {{range .}}
              <tr><td>{{.Name}}</td><td>{{.Phone}}</td><td>{{.Email}}</td><td>{{.Bringing}}</td><td>{{.Location}}</td></tr>
            {{end}}
            </tbody>
          </table>
        {{else}}
          <p style="color: #666; font-style: italic;">No deliveries scheduled.</p>
        {{end}}
      {{end}}

      <h2 style="color: #e31837;">Today's Deliveries</h2>
      {{template "signupTable" .Today}}

      <h2 style="color: #e31837;">Tomorrow's Deliveries</h2>
      {{template "signupTable" .Tomorrow}}

      <h2 style="color: #e31837;">{{.DayAfterHeading}}'s Deliveries</h2>
      {{template "signupTable" .DayAfter}}

      <h2 style="color: #e31837;">Cancellations (Past 24 Hours)</h2>
      {{if .Cancellations}}
        <table>
          <thead><tr><th>Name</th><th>Date</th><th>Location</th><th>Was Bringing</th></tr></thead>
          <tbody>
          {{range .Cancellations}}
            <tr><td>{{.Name}}</td><td>{{.FormattedDate}}</td><td>{{.Location}}</td><td>{{.Bringing}}</td></tr>
          {{end}}
          </tbody>
        </table>
      {{else}}
        <p style="color: #666; font-style: italic;">No recent cancellations.</p>
      {{end}}

      <h2 style="color: #e31837;">Open Slots - Next 7 Days</h2>
      {{if .OpenSlots}}
        <ul>
        {{range .OpenSlots}}
          <li><strong>{{.FormattedDate}}</strong> - {{.Location}}</li>
        {{end}}
        </ul>
      {{else}}
        <p style="color: #28a745; font-style: italic;">All slots are filled for the next 7 days!</p>
      {{end}}
    </div>
    <div class="footer">
      <p>{{.Org.Name}}<br>{{.Org.Address}}<br>{{.Org.Phone}}</p>
    </div>
  </div>
</body>
</html>
`))
