package mailer

import (
	"context"

	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQMailerQueue struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewRabbitMQMailerQueue(conn *amqp091.Connection, queue string) (contracts.MailerQueue, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}

	return &rabbitMQMailerQueue{
		Channel: channel,
		Queue:   queue,
	}, nil
}

func (q *rabbitMQMailerQueue) PublishEmail(ctx context.Context, payload *requests.EmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	if err := q.Channel.PublishWithContext(ctx, "", q.Queue, false, false, message); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, q.Queue)
	}

	return nil
}
