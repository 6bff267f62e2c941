package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"shiptrack/internal/mailer"
	"shiptrack/internal/models"
)

// Delivery is one planned notification email.
type Delivery struct {
	Name  string
	Email string
	Vars  mailer.Vars
}

// HandleMessage is the notifier consumer entrypoint. Decode and lookup
// failures are non-retryable; SMTP failures are logged per recipient
// and never bubble up, since notification is best-effort.
func (s *Service) HandleMessage(ctx context.Context, payload []byte) error {
	var ev models.ShipmentEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	sh, err := s.repo.Shipments.GetByID(ev.ShipmentID)
	if gorm.IsRecordNotFoundError(err) {
		// Shipment deleted between publish and consume; nothing to do.
		return fmt.Errorf("%w: shipment %s", ErrNotFound, ev.ShipmentID)
	}
	if err != nil {
		return err
	}

	deliveries, err := s.PlanDeliveries(sh, ev)
	if err != nil {
		return err
	}

	for _, d := range deliveries {
		subject, body, err := mailer.Render(ev.Template, d.Vars)
		if err != nil {
			logrus.WithError(err).WithField("template", ev.Template).Error("render notification")
			continue
		}
		if s.sender == nil {
			continue
		}
		if err := s.sender.Send(d.Email, subject, body); err != nil {
			logrus.WithError(err).
				WithField("recipient", d.Email).
				WithField("tracking_number", ev.TrackingNumber).
				Error("send notification")
		}
	}
	return nil
}

// PlanDeliveries resolves recipients and gates each one by the
// preference flag matching the event template. Sender and receiver are
// always candidates; admins join only when their admin-wide flag is on.
func (s *Service) PlanDeliveries(sh models.Shipment, ev models.ShipmentEvent) ([]Delivery, error) {
	serviceName := ""
	if sh.ServiceID != "" {
		if svc, err := s.repo.Services.Get(sh.ServiceID); err == nil {
			serviceName = svc.Name
		}
	}

	type candidate struct {
		name  string
		email string
	}
	candidates := []candidate{
		{sh.SenderName, sh.SenderEmail},
		{sh.ReceiverName, sh.ReceiverEmail},
	}

	admins, err := s.repo.Preferences.AdminEnabled()
	if err != nil {
		return nil, err
	}
	for _, a := range admins {
		candidates = append(candidates, candidate{"Admin", a.Email})
	}

	seen := make(map[string]bool)
	var out []Delivery
	for _, c := range candidates {
		if c.email == "" || seen[c.email] {
			continue
		}
		seen[c.email] = true

		if !s.allows(c.email, ev.Template) {
			continue
		}

		out = append(out, Delivery{
			Name:  c.name,
			Email: c.email,
			Vars:  buildVars(c.name, sh, ev, serviceName),
		})
	}
	return out, nil
}

// allows consults the stored preferences for an email address. Absent
// preferences mean the defaults, which allow every shipment event.
func (s *Service) allows(email string, t models.EmailTemplate) bool {
	p, err := s.repo.Preferences.FindByEmail(email)
	if gorm.IsRecordNotFoundError(err) {
		return true
	}
	if err != nil {
		logrus.WithError(err).WithField("email", email).Warn("load preferences, defaulting to send")
		return true
	}
	return p.Allows(t)
}

func buildVars(recipient string, sh models.Shipment, ev models.ShipmentEvent, serviceName string) mailer.Vars {
	v := mailer.Vars{
		RecipientName:   recipient,
		TrackingNumber:  sh.TrackingNumber,
		ServiceName:     serviceName,
		Origin:          fmt.Sprintf("%s, %s", sh.SenderAddress.City, sh.SenderAddress.Country),
		Destination:     fmt.Sprintf("%s, %s", sh.ReceiverAddress.City, sh.ReceiverAddress.Country),
		CurrentLocation: ev.Location,
		Currency:        sh.Currency,
		Description:     ev.Description,
	}
	if sh.EstimatedCost > 0 {
		v.Cost = fmt.Sprintf("%.2f", sh.EstimatedCost)
	}
	if sh.FinalCost != nil {
		v.Cost = fmt.Sprintf("%.2f", *sh.FinalCost)
	}
	if sh.EstimatedDelivery != nil {
		v.EstimatedDelivery = sh.EstimatedDelivery.Format("Jan 2, 2006")
	}
	if sh.ActualDelivery != nil {
		v.ActualDelivery = sh.ActualDelivery.Format("Jan 2, 2006 15:04")
	}
	return v
}

// SendTest delivers a sample notification synchronously so an admin can
// verify SMTP settings.
func (s *Service) SendTest(to string) error {
	if s.sender == nil {
		return fmt.Errorf("mailer is not configured")
	}

	subject, body, err := mailer.Render(models.TemplateShipmentCreated, mailer.Vars{
		RecipientName:  "Test Recipient",
		TrackingNumber: "SP000000000",
		ServiceName:    "Standard Shipping",
		Origin:         "Rotterdam, Netherlands",
		Destination:    "Austin, United States",
	})
	if err != nil {
		return err
	}
	return s.sender.Send(to, subject, body)
}
