package mailer

import (
	"io"
	"log"

	"shophub/internal/domain"
)

// Dispatcher sends order confirmations off the request path. Orders are
// queued onto a buffered channel and drained by a single worker; the caller
// never waits on delivery.
type Dispatcher struct {
	sender Sender
	logger *log.Logger
	queue  chan domain.Order
	done   chan struct{}
}

func NewDispatcher(sender Sender, logger *log.Logger, queueSize int) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Dispatcher{
		sender: sender,
		logger: logger,
		queue:  make(chan domain.Order, queueSize),
		done:   make(chan struct{}),
	}
}

// Start launches the delivery worker.
func (d *Dispatcher) Start() {
	go d.run()
}

// Enqueue schedules a confirmation email. It never blocks: if the queue is
// full the order's email is dropped and logged, matching the no-retry policy.
func (d *Dispatcher) Enqueue(order domain.Order) {
	select {
	case d.queue <- order:
	default:
		d.logger.Printf("mail queue full, dropping confirmation for order %s", order.ID)
	}
}

// Close stops accepting orders, drains the queue and waits for the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for order := range d.queue {
		d.send(order)
	}
}

func (d *Dispatcher) send(order domain.Order) {
	textBody, htmlBody, err := renderOrder(order)
	if err != nil {
		d.logger.Printf("error rendering order confirmation email: %v", err)
		return
	}
	if err := d.sender.Send(order.Customer.Email, subject, textBody, htmlBody); err != nil {
		d.logger.Printf("error sending order confirmation email: %v", err)
		return
	}
	d.logger.Printf("order confirmation email sent to %s", order.Customer.Email)
}
