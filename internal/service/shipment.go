package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"shiptrack/internal/models"
)

type CreateShipmentInput struct {
	SenderName    string         `json:"senderName"    validate:"required"`
	SenderEmail   string         `json:"senderEmail"   validate:"required,email"`
	SenderPhone   string         `json:"senderPhone"`
	SenderAddress models.Address `json:"senderAddress" validate:"required"`

	ReceiverName    string         `json:"receiverName"    validate:"required"`
	ReceiverEmail   string         `json:"receiverEmail"   validate:"required,email"`
	ReceiverPhone   string         `json:"receiverPhone"`
	ReceiverAddress models.Address `json:"receiverAddress" validate:"required"`

	ServiceID string `json:"serviceId"`

	Weight              float64           `json:"weight" validate:"gt=0"`
	Dimensions          models.Dimensions `json:"dimensions"`
	DeclaredValue       float64           `json:"declaredValue" validate:"gte=0"`
	Description         string            `json:"description"`
	SpecialInstructions string            `json:"specialInstructions"`

	EstimatedCost     float64    `json:"estimatedCost" validate:"gte=0"`
	Currency          string     `json:"currency"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`

	CreatedBy string `json:"createdBy"`
}

type StatusUpdate struct {
	Status      string `json:"status" validate:"required,oneof=PENDING PICKED_UP IN_TRANSIT OUT_FOR_DELIVERY DELIVERED CANCELLED"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type PatchShipmentInput struct {
	CurrentLocation     *string    `json:"currentLocation"`
	EstimatedDelivery   *time.Time `json:"estimatedDelivery"`
	FinalCost           *float64   `json:"finalCost"`
	PaymentStatus       *string    `json:"paymentStatus" validate:"omitempty,oneof=PENDING PAID FAILED REFUNDED"`
	SpecialInstructions *string    `json:"specialInstructions"`
	Route               []string   `json:"route"`
}

type ShipmentPage struct {
	Shipments  []models.Shipment `json:"shipments"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

type TrackingInfo struct {
	Shipment models.Shipment        `json:"shipment"`
	Progress int                    `json:"progress"`
	Events   []models.TrackingEvent `json:"events"`
}

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

func (s *Service) validate(v any) error {
	if err := s.v.Struct(v); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return fmt.Errorf("%w: %s", ErrValidation, humanizeValidationErrors(verrs))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// newID produces a 24-char lowercase hex identifier.
func newID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in serious trouble
		panic(err)
	}
	return hex.EncodeToString(buf)
}

func isHex24(s string) bool {
	if len(s) != 24 {
		return false
	}
	if _, err := hex.DecodeString(s); err != nil {
		return false
	}
	return true
}

// newTrackingNumber derives an SP-prefixed 9-digit number from the
// current timestamp.
func newTrackingNumber(now time.Time) string {
	return fmt.Sprintf("SP%09d", now.UnixNano()%1_000_000_000)
}

// uniqueTrackingNumber retries with a random suffix on collision.
func (s *Service) uniqueTrackingNumber(now time.Time) (string, error) {
	number := newTrackingNumber(now)
	for attempt := 0; attempt < 5; attempt++ {
		exists, err := s.repo.Shipments.TrackingNumberExists(number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
		n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
		if err != nil {
			return "", err
		}
		number = fmt.Sprintf("SP%09d", n.Int64())
	}
	return "", fmt.Errorf("could not allocate a unique tracking number")
}

func (s *Service) Create(ctx context.Context, in CreateShipmentInput) (models.Shipment, error) {
	if err := s.validate(in); err != nil {
		return models.Shipment{}, err
	}

	now := time.Now().UTC()
	number, err := s.uniqueTrackingNumber(now)
	if err != nil {
		return models.Shipment{}, err
	}

	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}

	sh := models.Shipment{
		ID:                  newID(),
		TrackingNumber:      number,
		SenderName:          in.SenderName,
		SenderEmail:         in.SenderEmail,
		SenderPhone:         in.SenderPhone,
		SenderAddress:       in.SenderAddress,
		ReceiverName:        in.ReceiverName,
		ReceiverEmail:       in.ReceiverEmail,
		ReceiverPhone:       in.ReceiverPhone,
		ReceiverAddress:     in.ReceiverAddress,
		ServiceID:           in.ServiceID,
		Weight:              in.Weight,
		Dimensions:          in.Dimensions,
		DeclaredValue:       in.DeclaredValue,
		Description:         in.Description,
		SpecialInstructions: in.SpecialInstructions,
		Status:              models.StatusPending,
		EstimatedCost:       in.EstimatedCost,
		Currency:            currency,
		PaymentStatus:       models.PaymentPending,
		EstimatedDelivery:   in.EstimatedDelivery,
		CreatedBy:           in.CreatedBy,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	ev := models.TrackingEvent{
		Status:      models.StatusPending,
		Description: "Shipment created",
		Location:    in.SenderAddress.City,
		Timestamp:   now,
	}

	if err := s.repo.Shipments.CreateWithEvent(sh, ev); err != nil {
		return models.Shipment{}, err
	}

	s.publish(ctx, models.NewShipmentEvent(models.TemplateShipmentCreated, sh, ev.Location, ev.Description))
	return sh, nil
}

// resolve disambiguates an identifier by shape: a 24-char hex value is
// tried as the internal id first; on miss, and for every other shape,
// the value is upper-cased and tried as a tracking number.
func (s *Service) resolve(ref string) (models.Shipment, error) {
	ref = strings.TrimSpace(ref)

	if isHex24(ref) {
		sh, err := s.repo.Shipments.GetByID(ref)
		if err == nil {
			return sh, nil
		}
		if !gorm.IsRecordNotFoundError(err) {
			return models.Shipment{}, err
		}
	}

	sh, err := s.repo.Shipments.GetByTrackingNumber(strings.ToUpper(ref))
	if gorm.IsRecordNotFoundError(err) {
		return models.Shipment{}, ErrNotFound
	}
	return sh, err
}

func (s *Service) Get(ref string) (models.Shipment, error) {
	return s.resolve(ref)
}

func (s *Service) Track(number string) (TrackingInfo, error) {
	sh, err := s.resolve(number)
	if err != nil {
		return TrackingInfo{}, err
	}

	events, err := s.repo.Shipments.EventsFor(sh.ID, true)
	if err != nil {
		return TrackingInfo{}, err
	}

	return TrackingInfo{
		Shipment: sh,
		Progress: models.Progress(sh.Status),
		Events:   events,
	}, nil
}

func (s *Service) List(f models.ShipmentFilter) (ShipmentPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}

	shipments, total, err := s.repo.Shipments.List(f)
	if err != nil {
		return ShipmentPage{}, err
	}

	return ShipmentPage{
		Shipments:  shipments,
		Total:      total,
		Page:       f.Page,
		TotalPages: f.TotalPages(total),
	}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, ref string, upd StatusUpdate) (models.Shipment, error) {
	if err := s.validate(upd); err != nil {
		return models.Shipment{}, err
	}

	sh, err := s.resolve(ref)
	if err != nil {
		return models.Shipment{}, err
	}

	now := time.Now().UTC()
	description := upd.Description
	if description == "" {
		description = fmt.Sprintf("Shipment status updated to %s", upd.Status)
	}

	updates := map[string]interface{}{
		"status":     upd.Status,
		"updated_at": now,
	}
	if upd.Location != "" {
		updates["current_location"] = upd.Location
	}
	if upd.Status == models.StatusDelivered {
		updates["actual_delivery"] = now
	}

	ev := models.TrackingEvent{
		Status:      upd.Status,
		Description: description,
		Location:    upd.Location,
		Timestamp:   now,
	}

	if err := s.repo.Shipments.Transition(sh.ID, updates, ev); err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Shipment{}, ErrNotFound
		}
		return models.Shipment{}, err
	}

	sh.Status = upd.Status
	sh.UpdatedAt = now
	if upd.Location != "" {
		sh.CurrentLocation = upd.Location
	}
	if upd.Status == models.StatusDelivered {
		sh.ActualDelivery = &now
	}

	if tpl, ok := models.TemplateForStatus(upd.Status); ok {
		s.publish(ctx, models.NewShipmentEvent(tpl, sh, upd.Location, description))
	}
	return sh, nil
}

func (s *Service) Patch(ctx context.Context, ref string, upd PatchShipmentInput) (models.Shipment, error) {
	if err := s.validate(upd); err != nil {
		return models.Shipment{}, err
	}

	sh, err := s.resolve(ref)
	if err != nil {
		return models.Shipment{}, err
	}

	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if upd.CurrentLocation != nil {
		updates["current_location"] = *upd.CurrentLocation
	}
	if upd.EstimatedDelivery != nil {
		updates["estimated_delivery"] = *upd.EstimatedDelivery
	}
	if upd.FinalCost != nil {
		updates["final_cost"] = *upd.FinalCost
	}
	if upd.PaymentStatus != nil {
		updates["payment_status"] = *upd.PaymentStatus
	}
	if upd.SpecialInstructions != nil {
		updates["special_instructions"] = *upd.SpecialInstructions
	}
	if upd.Route != nil {
		raw, err := json.Marshal(upd.Route)
		if err != nil {
			return models.Shipment{}, err
		}
		updates["route"] = string(raw)
	}

	if err := s.repo.Shipments.Patch(sh.ID, updates); err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Shipment{}, ErrNotFound
		}
		return models.Shipment{}, err
	}

	return s.repo.Shipments.GetByID(sh.ID)
}

func (s *Service) Delete(ref string) error {
	sh, err := s.resolve(ref)
	if err != nil {
		return err
	}

	if err := s.repo.Shipments.Delete(sh.ID); err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// publish pushes the event onto the notification topic. Best-effort:
// a publish failure is logged and never surfaces to the caller.
func (s *Service) publish(ctx context.Context, ev models.ShipmentEvent) {
	if s.publisher == nil {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		logrus.WithError(err).Error("marshal shipment event")
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		logrus.WithError(err).
			WithField("tracking_number", ev.TrackingNumber).
			WithField("template", ev.Template).
			Error("publish shipment event")
	}
}
