package mailer

import (
	"bytes"
	"fmt"
	"text/template"

	"shiptrack/internal/models"
)

// Vars feeds the notification templates. Empty fields render as blanks,
// templates guard the optional ones.
type Vars struct {
	RecipientName     string
	TrackingNumber    string
	ServiceName       string
	Origin            string
	Destination       string
	CurrentLocation   string
	Cost              string
	Currency          string
	EstimatedDelivery string
	ActualDelivery    string
	Description       string
}

type emailTemplate struct {
	subject string
	body    *template.Template
}

var subjects = map[models.EmailTemplate]string{
	models.TemplateShipmentCreated: "Your shipment {{.TrackingNumber}} has been created",
	models.TemplatePickedUp:        "Shipment {{.TrackingNumber}} has been picked up",
	models.TemplateInTransit:       "Shipment {{.TrackingNumber}} is in transit",
	models.TemplateOutForDelivery:  "Shipment {{.TrackingNumber}} is out for delivery",
	models.TemplateDelivered:       "Shipment {{.TrackingNumber}} has been delivered",
	models.TemplateCancelled:       "Shipment {{.TrackingNumber}} has been cancelled",
}

var bodies = map[models.EmailTemplate]string{
	models.TemplateShipmentCreated: `Hello {{.RecipientName}},

Your shipment has been registered.

Tracking number: {{.TrackingNumber}}
Service: {{.ServiceName}}
From: {{.Origin}}
To: {{.Destination}}
{{- if .Cost}}
Estimated cost: {{.Cost}} {{.Currency}}
{{- end}}
{{- if .EstimatedDelivery}}
Estimated delivery: {{.EstimatedDelivery}}
{{- end}}

You can follow the shipment at any time using the tracking number above.
`,
	models.TemplatePickedUp: `Hello {{.RecipientName}},

Shipment {{.TrackingNumber}} has been picked up.
{{- if .CurrentLocation}}
Current location: {{.CurrentLocation}}
{{- end}}
{{- if .EstimatedDelivery}}
Estimated delivery: {{.EstimatedDelivery}}
{{- end}}
`,
	models.TemplateInTransit: `Hello {{.RecipientName}},

Shipment {{.TrackingNumber}} is on its way to {{.Destination}}.
{{- if .CurrentLocation}}
Current location: {{.CurrentLocation}}
{{- end}}
{{- if .EstimatedDelivery}}
Estimated delivery: {{.EstimatedDelivery}}
{{- end}}
`,
	models.TemplateOutForDelivery: `Hello {{.RecipientName}},

Shipment {{.TrackingNumber}} is out for delivery and should arrive today.
{{- if .CurrentLocation}}
Current location: {{.CurrentLocation}}
{{- end}}
`,
	models.TemplateDelivered: `Hello {{.RecipientName}},

Shipment {{.TrackingNumber}} has been delivered.
{{- if .ActualDelivery}}
Delivered at: {{.ActualDelivery}}
{{- end}}

Thank you for shipping with us.
`,
	models.TemplateCancelled: `Hello {{.RecipientName}},

Shipment {{.TrackingNumber}} has been cancelled.
{{- if .Description}}
Reason: {{.Description}}
{{- end}}

If this is unexpected, please contact support.
`,
}

var templates = func() map[models.EmailTemplate]emailTemplate {
	out := make(map[models.EmailTemplate]emailTemplate, len(bodies))
	for name, body := range bodies {
		out[name] = emailTemplate{
			subject: subjects[name],
			body:    template.Must(template.New(string(name)).Parse(body)),
		}
	}
	return out
}()

// Render produces the subject and body for a template.
func Render(t models.EmailTemplate, v Vars) (string, string, error) {
	tpl, ok := templates[t]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", t)
	}

	subjTpl, err := template.New("subject").Parse(tpl.subject)
	if err != nil {
		return "", "", err
	}

	var subj, body bytes.Buffer
	if err := subjTpl.Execute(&subj, v); err != nil {
		return "", "", err
	}
	if err := tpl.body.Execute(&body, v); err != nil {
		return "", "", err
	}
	return subj.String(), body.String(), nil
}
