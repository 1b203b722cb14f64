package rabbitmq

// QueueConfig связывает очередь с ключом маршрутизации в обменнике notifications.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди почтовых уведомлений сервиса.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notifications.trial", RoutingKey: "trial"},
		// при необходимости дополнительные очереди для других воркеров
	}
}
