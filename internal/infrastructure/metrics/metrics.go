package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FulfillmentMetrics содержит все метрики жизненного цикла позиций заказа
type FulfillmentMetrics struct {
	// Переходы статусов фулфилмента
	ItemsShippedTotal prometheus.CounterVec
	ItemsDeliveredTotal prometheus.CounterVec
	ItemsIssueTotal prometheus.CounterVec

	// Диспуты
	DisputesOpenedTotal prometheus.CounterVec
	DisputesResolvedTotal prometheus.CounterVec
	DisputesOpenGauge prometheus.Gauge

	// Платежные вебхуки
	WebhooksReceivedTotal prometheus.CounterVec
	WebhookSignatureErrorsTotal prometheus.CounterVec

	// Выплаты
	PayoutItemsTotal prometheus.CounterVec
	PayoutAmountTotal prometheus.CounterVec

	// Уведомления
	NotificationsSentTotal prometheus.CounterVec
	NotificationSendErrorsTotal prometheus.CounterVec
	NotificationSendDuration prometheus.HistogramVec
}

// NewFulfillmentMetrics создает новый экземпляр метрик
func NewFulfillmentMetrics() *FulfillmentMetrics {
	return &FulfillmentMetrics{
		ItemsShippedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_items_shipped_total",
				Help: "Общее количество позиций, отмеченных отправленными",
			},
			[]string{"seller_id", "carrier"},
		),

		ItemsDeliveredTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_items_delivered_total",
				Help: "Общее количество позиций, отмеченных доставленными",
			},
			[]string{"seller_id"},
		),

		ItemsIssueTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_items_issue_total",
				Help: "Общее количество позиций, переведенных в статус ISSUE",
			},
			[]string{"seller_id"},
		),

		DisputesOpenedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disputes_opened_total",
				Help: "Общее количество открытых диспутов",
			},
			[]string{"reason"},
		),

		DisputesResolvedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disputes_resolved_total",
				Help: "Общее количество закрытых диспутов по исходам",
			},
			[]string{"outcome"},
		),

		DisputesOpenGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "disputes_open_count",
				Help: "Текущее количество открытых диспутов",
			},
		),

		WebhooksReceivedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_webhooks_received_total",
				Help: "Общее количество принятых платежных вебхуков",
			},
			[]string{"provider", "outcome"},
		),

		WebhookSignatureErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_webhook_signature_errors_total",
				Help: "Количество вебхуков с неверной подписью",
			},
			[]string{"provider"},
		),

		PayoutItemsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_items_total",
				Help: "Количество позиций, помеченных выплаченными",
			},
			[]string{"seller_id"},
		),

		PayoutAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_amount_total",
				Help: "Общая сумма выплат по продавцам",
			},
			[]string{"seller_id", "currency"},
		),

		NotificationsSentTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_sent_total",
				Help: "Количество успешно отправленных уведомлений по каналам",
			},
			[]string{"channel", "type"},
		),

		NotificationSendErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_send_errors_total",
				Help: "Количество ошибок отправки уведомлений по каналам",
			},
			[]string{"channel", "type"},
		),

		NotificationSendDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "notification_send_duration_seconds",
				Help:    "Время отправки уведомления во внешний канал",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 8), // 50ms, 100ms, 200ms...
			},
			[]string{"channel"},
		),
	}
}

// RecordItemShipped записывает отправленную позицию
func (m *FulfillmentMetrics) RecordItemShipped(sellerID, carrier string) {
	m.ItemsShippedTotal.WithLabelValues(sellerID, carrier).Inc()
}

// RecordItemDelivered записывает доставленную позицию
func (m *FulfillmentMetrics) RecordItemDelivered(sellerID string) {
	m.ItemsDeliveredTotal.WithLabelValues(sellerID).Inc()
}

// RecordItemIssue записывает позицию с проблемой
func (m *FulfillmentMetrics) RecordItemIssue(sellerID string) {
	m.ItemsIssueTotal.WithLabelValues(sellerID).Inc()
}

// RecordDisputeOpened записывает открытый диспут
func (m *FulfillmentMetrics) RecordDisputeOpened(reason string) {
	m.DisputesOpenedTotal.WithLabelValues(reason).Inc()
}

// RecordDisputeResolved записывает закрытый диспут
func (m *FulfillmentMetrics) RecordDisputeResolved(outcome string) {
	m.DisputesResolvedTotal.WithLabelValues(outcome).Inc()
}

// SetOpenDisputes обновляет gauge открытых диспутов
func (m *FulfillmentMetrics) SetOpenDisputes(count int64) {
	m.DisputesOpenGauge.Set(float64(count))
}

// RecordWebhook записывает принятый вебхук
func (m *FulfillmentMetrics) RecordWebhook(provider, outcome string) {
	m.WebhooksReceivedTotal.WithLabelValues(provider, outcome).Inc()
}

// RecordWebhookSignatureError записывает вебхук с неверной подписью
func (m *FulfillmentMetrics) RecordWebhookSignatureError(provider string) {
	m.WebhookSignatureErrorsTotal.WithLabelValues(provider).Inc()
}

// RecordPayout записывает выплату по продавцу
func (m *FulfillmentMetrics) RecordPayout(sellerID, currency string, itemsCount int64, amount float64) {
	m.PayoutItemsTotal.WithLabelValues(sellerID).Add(float64(itemsCount))
	m.PayoutAmountTotal.WithLabelValues(sellerID, currency).Add(amount)
}

// RecordNotificationSent записывает успешную отправку уведомления
func (m *FulfillmentMetrics) RecordNotificationSent(channel, notificationType string, durationSeconds float64) {
	m.NotificationsSentTotal.WithLabelValues(channel, notificationType).Inc()
	m.NotificationSendDuration.WithLabelValues(channel).Observe(durationSeconds)
}

// RecordNotificationError записывает ошибку отправки уведомления
func (m *FulfillmentMetrics) RecordNotificationError(channel, notificationType string) {
	m.NotificationSendErrorsTotal.WithLabelValues(channel, notificationType).Inc()
}
