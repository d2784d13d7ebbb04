package usecase

import (
	"context"
	"time"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	notificationdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/notification"
)

type stubItemRepo struct {
	items map[string]*domain.OrderItem
}

func newStubItemRepo(items ...*domain.OrderItem) *stubItemRepo {
	repo := &stubItemRepo{items: make(map[string]*domain.OrderItem)}
	for _, item := range items {
		copied := *item
		repo.items[item.ID] = &copied
	}
	return repo
}

func (s *stubItemRepo) CreateOrderItem(item *domain.OrderItem) error {
	copied := *item
	s.items[item.ID] = &copied
	return nil
}

func (s *stubItemRepo) GetOrderItemByID(itemID string) (*domain.OrderItem, error) {
	item, ok := s.items[itemID]
	if !ok {
		return nil, domain.ErrOrderItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (s *stubItemRepo) UpdateShipment(itemID string, update domain.ShipmentUpdate) error {
	item, ok := s.items[itemID]
	if !ok {
		return domain.ErrOrderItemNotFound
	}
	item.FulfillmentStatus = update.Status
	if update.Carrier != nil {
		item.Carrier = *update.Carrier
	}
	if update.TrackingCode != nil {
		item.TrackingCode = *update.TrackingCode
	}
	if update.ProofURL != nil {
		item.ProofURL = *update.ProofURL
	}
	if update.Note != nil {
		item.Note = *update.Note
	}
	if update.ShippedAt != nil {
		item.ShippedAt = update.ShippedAt
	}
	if update.DeliveredAt != nil {
		item.DeliveredAt = update.DeliveredAt
	}
	return nil
}

func (s *stubItemRepo) UpdateFulfillmentStatus(itemID string, status domain.FulfillmentStatus) error {
	item, ok := s.items[itemID]
	if !ok {
		return domain.ErrOrderItemNotFound
	}
	item.FulfillmentStatus = status
	return nil
}

func (s *stubItemRepo) MarkPaidOut(itemIDs []string, batchID string, paidOutAt time.Time) error {
	for _, id := range itemIDs {
		item, ok := s.items[id]
		if !ok {
			continue
		}
		item.PayoutStatus = domain.PayoutPaidOut
		item.PayoutBatchID = batchID
		item.PaidOutAt = &paidOutAt
	}
	return nil
}

func (s *stubItemRepo) GetItemsByBatchID(batchID string) ([]*domain.OrderItem, error) {
	var items []*domain.OrderItem
	for _, item := range s.items {
		if item.PayoutBatchID == batchID {
			copied := *item
			items = append(items, &copied)
		}
	}
	return items, nil
}

func (s *stubItemRepo) GetPaidOutItemsBySellerID(sellerID string) ([]*domain.OrderItem, error) {
	var items []*domain.OrderItem
	for _, item := range s.items {
		if item.SellerID == sellerID && item.PayoutStatus == domain.PayoutPaidOut {
			copied := *item
			items = append(items, &copied)
		}
	}
	return items, nil
}

func (s *stubItemRepo) GetItemsBySellerID(sellerID string, page, limit int64) ([]*domain.OrderItem, int64, error) {
	var items []*domain.OrderItem
	for _, item := range s.items {
		if item.SellerID == sellerID {
			copied := *item
			items = append(items, &copied)
		}
	}
	return items, int64(len(items)), nil
}

type stubDisputeRepo struct {
	disputes map[string]*domain.Dispute
}

func newStubDisputeRepo(disputes ...*domain.Dispute) *stubDisputeRepo {
	repo := &stubDisputeRepo{disputes: make(map[string]*domain.Dispute)}
	for _, dispute := range disputes {
		copied := *dispute
		repo.disputes[dispute.ID] = &copied
	}
	return repo
}

func (s *stubDisputeRepo) CreateDispute(dispute *domain.Dispute) error {
	copied := *dispute
	s.disputes[dispute.ID] = &copied
	return nil
}

func (s *stubDisputeRepo) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	dispute, ok := s.disputes[disputeID]
	if !ok {
		return nil, domain.ErrDisputeNotFound
	}
	copied := *dispute
	return &copied, nil
}

func (s *stubDisputeRepo) GetDisputeByOrderItemID(orderItemID string) (*domain.Dispute, error) {
	for _, dispute := range s.disputes {
		if dispute.OrderItemID == orderItemID {
			copied := *dispute
			return &copied, nil
		}
	}
	return nil, domain.ErrDisputeNotFound
}

func (s *stubDisputeRepo) UpdateDisputeResolution(disputeID string, status domain.DisputeStatus, note, resolvedByID string, resolvedAt time.Time) error {
	dispute, ok := s.disputes[disputeID]
	if !ok {
		return domain.ErrDisputeNotFound
	}
	dispute.Status = status
	dispute.ResolutionNote = note
	dispute.ResolvedByID = resolvedByID
	dispute.ResolvedAt = &resolvedAt
	return nil
}

func (s *stubDisputeRepo) GetDisputes(filter domain.GetDisputesFilter) ([]*domain.Dispute, int64, error) {
	var disputes []*domain.Dispute
	for _, dispute := range s.disputes {
		if filter.Status != nil && string(dispute.Status) != *filter.Status {
			continue
		}
		copied := *dispute
		disputes = append(disputes, &copied)
	}
	return disputes, int64(len(disputes)), nil
}

func (s *stubDisputeRepo) CountDisputesByStatus(status domain.DisputeStatus) (int64, error) {
	var total int64
	for _, dispute := range s.disputes {
		if dispute.Status == status {
			total++
		}
	}
	return total, nil
}

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, user := range users {
		copied := *user
		repo.users[user.ID] = &copied
	}
	return repo
}

func (s *stubUserRepo) GetUserByID(userID string) (*domain.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *stubUserRepo) CreateUser(user *domain.User) error {
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

type stubPaymentRepo struct {
	payments map[string]*domain.Payment
}

func newStubPaymentRepo(payments ...*domain.Payment) *stubPaymentRepo {
	repo := &stubPaymentRepo{payments: make(map[string]*domain.Payment)}
	for _, payment := range payments {
		copied := *payment
		repo.payments[payment.ID] = &copied
	}
	return repo
}

func (s *stubPaymentRepo) CreatePayment(payment *domain.Payment) error {
	copied := *payment
	s.payments[payment.ID] = &copied
	return nil
}

func (s *stubPaymentRepo) GetPaymentByExternalRef(provider, externalRef string) (*domain.Payment, error) {
	for _, payment := range s.payments {
		if payment.Provider == provider && payment.ExternalRef == externalRef {
			copied := *payment
			return &copied, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (s *stubPaymentRepo) UpdatePaymentStatus(paymentID string, status domain.PaymentStatus) error {
	payment, ok := s.payments[paymentID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	payment.Status = status
	return nil
}

type stubNotificationRepo struct {
	notifications []*domain.Notification
}

func (s *stubNotificationRepo) CreateNotification(notification *domain.Notification) error {
	copied := *notification
	s.notifications = append(s.notifications, &copied)
	return nil
}

func (s *stubNotificationRepo) GetNotificationsByUserID(userID string, page, limit int64) ([]*domain.Notification, int64, error) {
	var result []*domain.Notification
	for _, notification := range s.notifications {
		if notification.UserID == userID {
			result = append(result, notification)
		}
	}
	return result, int64(len(result)), nil
}

func (s *stubNotificationRepo) MarkNotificationRead(notificationID string, readAt time.Time) error {
	for _, notification := range s.notifications {
		if notification.ID == notificationID {
			notification.ReadAt = &readAt
			return nil
		}
	}
	return nil
}

// recordingNotifications записывает вызовы Create вместо реальной отправки
type recordingNotifications struct {
	created []*notificationdto.CreateNotificationInput
	err     error
}

func (s *recordingNotifications) Create(ctx context.Context, input *notificationdto.CreateNotificationInput) error {
	s.created = append(s.created, input)
	return s.err
}

func (s *recordingNotifications) GetByUserID(userID string, page, limit int64) ([]*domain.Notification, int64, error) {
	return nil, 0, nil
}

func (s *recordingNotifications) MarkRead(notificationID string) error {
	return nil
}

func (s *recordingNotifications) RegisterUser(user *domain.User) error {
	return nil
}
