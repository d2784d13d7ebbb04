package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/metrics"
	notificationdto "github.com/sokonova/sokonova-fulfillment-service/internal/usecase/dto/notification"
)

// Таймаут отправки в один внешний канал
const channelSendTimeout = 5 * time.Second

type NotificationUsecase interface {
	Create(ctx context.Context, input *notificationdto.CreateNotificationInput) error
	GetByUserID(userID string, page, limit int64) ([]*domain.Notification, int64, error)
	MarkRead(notificationID string) error
	RegisterUser(user *domain.User) error
}

type DefaultNotificationUsecase struct {
	notificationRepo domain.NotificationRepository
	userRepo         domain.UserRepository
	emailSender      domain.EmailSender
	smsSender        domain.SMSSender
	pushSender       domain.PushSender
	metrics          *metrics.FulfillmentMetrics
}

func NewDefaultNotificationUsecase(
	notificationRepo domain.NotificationRepository,
	userRepo domain.UserRepository,
	emailSender domain.EmailSender,
	smsSender domain.SMSSender,
	pushSender domain.PushSender,
	fulfillmentMetrics *metrics.FulfillmentMetrics,
	) *DefaultNotificationUsecase {
	return &DefaultNotificationUsecase{
		notificationRepo: notificationRepo,
		userRepo: userRepo,
		emailSender: emailSender,
		smsSender: smsSender,
		pushSender: pushSender,
		metrics: fulfillmentMetrics,
	}
}

// Create всегда сохраняет in-app запись; внешние каналы отправляются после коммита,
// поэтому ошибка канала возвращается, когда уведомление уже существует
func (uc *DefaultNotificationUsecase) Create(ctx context.Context, input *notificationdto.CreateNotificationInput) error {
	user, err := uc.userRepo.GetUserByID(input.UserID)
	if err != nil {
		return err
	}

	dataJSON := ""
	if len(input.Data) > 0 {
		raw, err := json.Marshal(input.Data)
		if err != nil {
			return err
		}
		dataJSON = string(raw)
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return err
	}
	notification := domain.Notification{
		ID: idGenerator(),
		UserID: input.UserID,
		Type: input.Type,
		Title: input.Title,
		Body: input.Body,
		DataJSON: dataJSON,
		CreatedAt: time.Now(),
	}
	if err := uc.notificationRepo.CreateNotification(&notification); err != nil {
		return err
	}

	quiet := isWithinQuietHours(user, time.Now())

	var sendErrs []string
	for _, channel := range input.Channels {
		if !uc.channelEnabled(user, channel) || quiet {
			continue
		}
		if err := uc.sendToChannel(ctx, user, channel, input); err != nil {
			if uc.metrics != nil {
				uc.metrics.RecordNotificationError(string(channel), string(input.Type))
			}
			sendErrs = append(sendErrs, fmt.Sprintf("%s: %v", channel, err))
		}
	}

	if len(sendErrs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrChannelSendFailed, strings.Join(sendErrs, "; "))
	}
	return nil
}

func (uc *DefaultNotificationUsecase) channelEnabled(user *domain.User, channel domain.Channel) bool {
	switch channel {
	case domain.ChannelEmail:
		return user.EmailEnabled && uc.emailSender != nil
	case domain.ChannelSMS:
		return user.SMSEnabled && uc.smsSender != nil
	case domain.ChannelPush:
		return user.PushEnabled && uc.pushSender != nil
	}
	return false
}

func (uc *DefaultNotificationUsecase) sendToChannel(ctx context.Context, user *domain.User, channel domain.Channel, input *notificationdto.CreateNotificationInput) error {
	sendCtx, cancel := context.WithTimeout(ctx, channelSendTimeout)
	defer cancel()

	started := time.Now()
	var err error
	switch channel {
	case domain.ChannelEmail:
		err = uc.emailSender.SendEmail(sendCtx, user.Email, input.Title, input.Body)
	case domain.ChannelSMS:
		err = uc.smsSender.SendSMS(sendCtx, user.Phone, input.Title+": "+input.Body)
	case domain.ChannelPush:
		err = uc.pushSender.SendPush(sendCtx, user.ID, input.Title, input.Body)
	}
	if err == nil && uc.metrics != nil {
		uc.metrics.RecordNotificationSent(string(channel), string(input.Type), time.Since(started).Seconds())
	}
	return err
}

// isWithinQuietHours проверяет локальное время пользователя; окно может переходить через полночь
func isWithinQuietHours(user *domain.User, now time.Time) bool {
	if user.QuietHoursStart == "" || user.QuietHoursEnd == "" {
		return false
	}
	start, okStart := parseClock(user.QuietHoursStart)
	end, okEnd := parseClock(user.QuietHoursEnd)
	if !okStart || !okEnd {
		return false
	}

	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		loc = time.UTC
	}
	localNow := now.In(loc)
	minutes := localNow.Hour()*60 + localNow.Minute()

	if start <= end {
		return minutes >= start && minutes < end
	}
	return minutes >= start || minutes < end
}

func parseClock(value string) (int, bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || mins < 0 || mins > 59 {
		return 0, false
	}
	return hours*60 + mins, true
}

func (uc *DefaultNotificationUsecase) GetByUserID(userID string, page, limit int64) ([]*domain.Notification, int64, error) {
	return uc.notificationRepo.GetNotificationsByUserID(userID, page, limit)
}

func (uc *DefaultNotificationUsecase) MarkRead(notificationID string) error {
	return uc.notificationRepo.MarkNotificationRead(notificationID, time.Now())
}

// RegisterUser заводит пользователя с его каналами и тихими часами
func (uc *DefaultNotificationUsecase) RegisterUser(user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return uc.userRepo.CreateUser(user)
}
