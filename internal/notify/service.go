package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/ShinMK-003/FoodOn/internal/profile"
	"github.com/ShinMK-003/FoodOn/internal/reservation"
	"github.com/asaskevich/EventBus"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Service turns reservation.created events into confirmation mails. Sends
// run on a bounded worker pool so a slow relay never stalls the bus or the
// submitting request; send failures are logged and dropped.
type Service struct {
	bus    EventBus.Bus
	mailer Mailer
	users  profile.UserRepository
	pool   *ants.Pool
}

func NewService(bus EventBus.Bus, mailer Mailer, users profile.UserRepository, poolSize int) (*Service, error) {
	if poolSize <= 0 {
		poolSize = 8
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	return &Service{bus: bus, mailer: mailer, users: users, pool: pool}, nil
}

// Start subscribes to the event bus.
func (s *Service) Start() error {
	return s.bus.Subscribe(reservation.EventReservationCreated, s.onReservationCreated)
}

// Stop unsubscribes and drains the pool.
func (s *Service) Stop() {
	_ = s.bus.Unsubscribe(reservation.EventReservationCreated, s.onReservationCreated)
	s.pool.Release()
}

func (s *Service) onReservationCreated(res *domain.Reservation) {
	err := s.pool.Submit(func() {
		s.sendConfirmation(res)
	})
	if err != nil {
		zap.L().Warn("notify pool rejected confirmation job",
			zap.Int64("reservation_id", res.ID), zap.Error(err))
	}
}

func (s *Service) sendConfirmation(res *domain.Reservation) {
	user, err := s.users.GetByID(context.Background(), res.UserID)
	if err != nil {
		zap.L().Warn("confirmation mail skipped, user lookup failed",
			zap.Int64("reservation_id", res.ID), zap.Error(err))
		return
	}

	body := renderConfirmation(res)
	if err := s.mailer.Send(user.Email, "Your table reservation "+res.Code, body); err != nil {
		zap.L().Warn("confirmation mail failed",
			zap.Int64("reservation_id", res.ID),
			zap.String("to", user.Email),
			zap.Error(err))
		return
	}
	zap.L().Info("confirmation mail sent",
		zap.Int64("reservation_id", res.ID), zap.String("code", res.Code))
}

func renderConfirmation(res *domain.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", res.CustomerName)
	fmt.Fprintf(&b, "Your reservation is in. Quote code %s when you arrive.\n\n", res.Code)
	fmt.Fprintf(&b, "Table:    %d\n", res.TableNumber)
	fmt.Fprintf(&b, "Guests:   %d adults, %d children\n", res.Adults, res.Children)
	fmt.Fprintf(&b, "When:     %s\n", res.ReservedAt.Format("Mon, 02 Jan 2006 15:04"))

	if items, err := res.Items(); err == nil && len(items) > 0 {
		b.WriteString("\nPre-ordered items:\n")
		for _, it := range items {
			fmt.Fprintf(&b, "  %d x %s ($%.2f)\n", it.Quantity, it.Title, it.Price)
		}
		fmt.Fprintf(&b, "\nTotal: $%.2f\n", res.TotalAmount)
	}
	b.WriteString("\nSee you soon!\n")
	return b.String()
}
