package reservation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ShinMK-003/FoodOn/internal/cart"
	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/ShinMK-003/FoodOn/pkg/common"
	"github.com/araddon/dateparse"
	"github.com/asaskevich/EventBus"
	"github.com/labstack/gommon/random"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventReservationCreated is published on the bus after a reservation row
// is durable. Subscribers receive the *domain.Reservation.
const EventReservationCreated = "reservation.created"

const reservationCodeLength = 8

// SubmitInput carries the reservation form fields as the client delivers
// them. Numeric fields arrive as text and are parsed during validation.
type SubmitInput struct {
	CustomerName string `json:"customer_name" form:"customer_name"`
	PhoneNumber  string `json:"phone_number" form:"phone_number"`
	TableNumber  string `json:"table_number" form:"table_number"`
	Adults       string `json:"adults" form:"adults"`
	Children     string `json:"children" form:"children"`
	Date         string `json:"date" form:"date"`
	Time         string `json:"time" form:"time"`
}

// SubmitResult is what the confirmation view receives. CartCleared is false
// when the reservation was persisted but the follow-up cart clear failed;
// the reservation itself stands either way.
type SubmitResult struct {
	Reservation *domain.Reservation      `json:"reservation"`
	Items       []domain.ReservationItem `json:"items"`
	CartCleared bool                     `json:"cart_cleared"`
}

// Service owns the reservation checkout flow: validate the form, compose
// the reservation timestamp, snapshot the cart, persist the record, then
// clear the cart. The reservation write is phase one and must be durable
// before the cart clear runs; a failed clear never rolls it back.
type Service struct {
	repo     Repository
	cartRepo cart.LineRepository
	bus      EventBus.Bus
}

func NewService(repo Repository, cartRepo cart.LineRepository, bus EventBus.Bus) *Service {
	return &Service{repo: repo, cartRepo: cartRepo, bus: bus}
}

// validate checks every required field and parses the numeric and date
// inputs. Any failure aborts before a single store call is made.
func validate(in SubmitInput) (tableNumber, adults, children int, reservedAt time.Time, err error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return 0, 0, 0, time.Time{}, domain.ValidationError("customer_name", "name is required")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		return 0, 0, 0, time.Time{}, domain.ValidationError("phone_number", "phone number is required")
	}
	if strings.TrimSpace(in.TableNumber) == "" {
		return 0, 0, 0, time.Time{}, domain.ValidationError("table_number", "table number is required")
	}
	if strings.TrimSpace(in.Adults) == "" {
		return 0, 0, 0, time.Time{}, domain.ValidationError("adults", "number of adults is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		return 0, 0, 0, time.Time{}, domain.ValidationError("date", "reservation date is required")
	}
	if strings.TrimSpace(in.Time) == "" {
		return 0, 0, 0, time.Time{}, domain.ValidationError("time", "reservation time is required")
	}

	tableNumber, perr := strconv.Atoi(strings.TrimSpace(in.TableNumber))
	if perr != nil || tableNumber <= 0 {
		return 0, 0, 0, time.Time{}, domain.ValidationError("table_number", "table number must be a positive integer")
	}
	adults, perr = strconv.Atoi(strings.TrimSpace(in.Adults))
	if perr != nil || adults < 0 {
		return 0, 0, 0, time.Time{}, domain.ValidationError("adults", "adults must be a non-negative integer")
	}
	children = 0
	if strings.TrimSpace(in.Children) != "" {
		children, perr = strconv.Atoi(strings.TrimSpace(in.Children))
		if perr != nil || children < 0 {
			return 0, 0, 0, time.Time{}, domain.ValidationError("children", "children must be a non-negative integer")
		}
	}

	reservedAt, err = composeDateTime(in.Date, in.Time)
	if err != nil {
		return 0, 0, 0, time.Time{}, err
	}
	return tableNumber, adults, children, reservedAt, nil
}

// composeDateTime merges the separately picked date and time into one
// absolute timestamp: the date's year/month/day with the time's hour and
// minute, seconds zeroed, in the server location.
func composeDateTime(dateStr, timeStr string) (time.Time, error) {
	day, err := dateparse.ParseLocal(strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, domain.ValidationError("date", "unrecognized date")
	}
	clock, err := time.Parse("15:04", strings.TrimSpace(timeStr))
	if err != nil {
		return time.Time{}, domain.ValidationError("time", "time must be HH:MM")
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
}

// generateCode returns the 8-character uppercase alphanumeric reservation
// code. It is a customer-facing reference, not a key; no uniqueness check.
func generateCode() string {
	return random.String(reservationCodeLength, random.Uppercase, random.Numeric)
}

// Submit runs the checkout flow for the authenticated user. The current
// cart is re-read and frozen into the record; once the reservation row is
// durable the cart is cleared in one batch. A failed clear is reported via
// CartCleared=false, never by undoing the reservation.
func (s *Service) Submit(ctx context.Context, userID int64, in SubmitInput) (*SubmitResult, error) {
	if userID == 0 {
		return nil, domain.AuthRequiredError("you must be logged in to make a reservation")
	}

	tableNumber, adults, children, reservedAt, err := validate(in)
	if err != nil {
		return nil, err
	}

	lines, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.StoreReadError("failed to snapshot cart", err)
	}

	items := make([]domain.ReservationItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.ReservationItem{
			ProductID: line.ProductID,
			Title:     line.Title,
			Price:     line.Price,
			Image:     line.Image,
			Quantity:  line.Quantity,
		})
	}

	res := &domain.Reservation{
		ID:           common.UUIDint64(),
		UserID:       userID,
		Code:         generateCode(),
		CustomerName: strings.TrimSpace(in.CustomerName),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		TableNumber:  tableNumber,
		Adults:       adults,
		Children:     children,
		ReservedAt:   reservedAt,
		TotalAmount:  cart.ComputeTotal(lines),
		Status:       domain.ReservationStatusPending,
	}
	if err := res.SetItems(items); err != nil {
		return nil, domain.StoreWriteError("failed to encode cart snapshot", err)
	}

	// Phase one: the reservation row. Any failure here aborts the whole
	// submission with the cart untouched.
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, domain.StoreWriteError("failed to create reservation", err)
	}

	// Phase two: clear the cart in a single batch. The reservation already
	// stands, so a failure only downgrades the result.
	cleared := true
	if err := s.cartRepo.DeleteAllByUser(ctx, userID); err != nil {
		cleared = false
		zap.L().Warn("reservation persisted but cart clear failed",
			zap.Int64("reservation_id", res.ID),
			zap.Int64("user_id", userID),
			zap.Error(err))
	}

	if s.bus != nil {
		s.bus.Publish(EventReservationCreated, res)
	}

	zap.L().Info("reservation created",
		zap.Int64("reservation_id", res.ID),
		zap.String("code", res.Code),
		zap.Int64("user_id", userID),
		zap.Float64("total", res.TotalAmount),
		zap.Bool("cart_cleared", cleared))

	return &SubmitResult{Reservation: res, Items: items, CartCleared: cleared}, nil
}

// Get re-reads one reservation for the confirmation view. Users see only
// their own records.
func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError("reservation not found")
		}
		return nil, domain.StoreReadError("failed to load reservation", err)
	}
	if res.UserID != userID {
		return nil, domain.NotFoundError("reservation not found")
	}
	return res, nil
}

// ListByUser returns the user's reservations, newest first.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.StoreReadError("failed to load reservations", err)
	}
	return list, nil
}

// ExpireStale flips pending reservations whose time passed more than the
// grace period ago to expired. Run from the scheduler; this is the only
// status transition the server performs.
func (s *Service) ExpireStale(ctx context.Context, grace time.Duration) error {
	n, err := s.repo.ExpirePending(ctx, time.Now().Add(-grace))
	if err != nil {
		return fmt.Errorf("expire stale reservations: %w", err)
	}
	if n > 0 {
		zap.L().Info("expired stale reservations", zap.Int64("count", n))
	}
	return nil
}
