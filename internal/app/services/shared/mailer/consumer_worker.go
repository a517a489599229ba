package mailer

import (
	"context"

	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// ConsumerWorker drains the mailer queue and delivers each message over SMTP.
type ConsumerWorker struct {
	conn    *amqp091.Connection
	mailer  contracts.MailerService
	queue   string
	log     *logrus.Logger
	cancel  context.CancelFunc
	done    chan struct{}
	channel *amqp091.Channel
}

func NewConsumerWorker(conn *amqp091.Connection, mailerService contracts.MailerService, queue string, log *logrus.Logger) *ConsumerWorker {
	return &ConsumerWorker{
		conn:   conn,
		mailer: mailerService,
		queue:  queue,
		log:    log,
		done:   make(chan struct{}),
	}
}

// Start begins consuming in a background goroutine. The returned stop
// function blocks until the consumer goroutine has exited.
func (w *ConsumerWorker) Start() (func(), error) {
	channel, err := w.conn.Channel()
	if err != nil {
		return nil, err
	}
	w.channel = channel

	if _, err := channel.QueueDeclare(w.queue, true, false, false, false, nil); err != nil {
		return nil, err
	}

	deliveries, err := channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go w.run(ctx, deliveries)

	stop := func() {
		w.cancel()
		w.channel.Close()
		<-w.done
	}
	return stop, nil
}

func (w *ConsumerWorker) run(ctx context.Context, deliveries <-chan amqp091.Delivery) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}
			w.handle(ctx, delivery)
		}
	}
}

func (w *ConsumerWorker) handle(ctx context.Context, delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.log.WithError(err).Error("mailer worker dropping malformed message")
		delivery.Nack(false, false)
		return
	}

	if err := w.mailer.SendEmail(ctx, &payload); err != nil {
		w.log.WithError(err).Error("mailer worker failed to deliver email")
		delivery.Nack(false, true)
		return
	}

	delivery.Ack(false)
}
