package library

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"librarygql/models"
	"strconv"
	"time"
)

type instrumentingService struct {
	requestCount   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	Service
}

// NewInstrumentingService returns an instance of an instrumenting Service.
// requestCount is labelled by method and error, requestLatency by method.
func NewInstrumentingService(requestCount *prometheus.CounterVec, requestLatency *prometheus.HistogramVec, s Service) Service {
	return &instrumentingService{
		requestCount:   requestCount,
		requestLatency: requestLatency,
		Service:        s,
	}
}

// NewMetrics creates the request metrics and registers them with registerer.
func NewMetrics(registerer prometheus.Registerer) (*prometheus.CounterVec, *prometheus.HistogramVec) {
	requestCount := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "api",
		Subsystem: "library_service",
		Name:      "request_count",
		Help:      "Number of requests received.",
	}, []string{"method", "error"})

	requestLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "api",
		Subsystem: "library_service",
		Name:      "request_latency_seconds",
		Help:      "Total duration of requests in seconds.",
	}, []string{"method"})

	registerer.MustRegister(requestCount, requestLatency)
	return requestCount, requestLatency
}

func (s *instrumentingService) observe(method string, begin time.Time, err error) {
	s.requestCount.WithLabelValues(method, strconv.FormatBool(err != nil)).Inc()
	s.requestLatency.WithLabelValues(method).Observe(time.Since(begin).Seconds())
}

func (s *instrumentingService) Books(ctx context.Context) (books []*models.Book, err error) {
	defer func(begin time.Time) { s.observe("books", begin, err) }(time.Now())
	return s.Service.Books(ctx)
}

func (s *instrumentingService) Book(ctx context.Context, id models.Id) (book *models.Book, err error) {
	defer func(begin time.Time) { s.observe("book", begin, err) }(time.Now())
	return s.Service.Book(ctx, id)
}

func (s *instrumentingService) BooksByAuthor(ctx context.Context, author *string) (books []*models.Book, err error) {
	defer func(begin time.Time) { s.observe("books_by_author", begin, err) }(time.Now())
	return s.Service.BooksByAuthor(ctx, author)
}

func (s *instrumentingService) BooksByCategory(ctx context.Context, category *models.Category) (books []*models.Book, err error) {
	defer func(begin time.Time) { s.observe("books_by_category", begin, err) }(time.Now())
	return s.Service.BooksByCategory(ctx, category)
}

func (s *instrumentingService) Add(ctx context.Context, inputs []models.BookInput) (books []*models.Book, err error) {
	defer func(begin time.Time) { s.observe("add", begin, err) }(time.Now())
	return s.Service.Add(ctx, inputs)
}

func (s *instrumentingService) CheckoutBook(ctx context.Context, id models.Id) (book *models.Book, err error) {
	defer func(begin time.Time) { s.observe("checkout_book", begin, err) }(time.Now())
	return s.Service.CheckoutBook(ctx, id)
}

func (s *instrumentingService) ReturnBook(ctx context.Context, id models.Id) (book *models.Book, err error) {
	defer func(begin time.Time) { s.observe("return_book", begin, err) }(time.Now())
	return s.Service.ReturnBook(ctx, id)
}

func (s *instrumentingService) Remove(ctx context.Context, id models.Id) (book *models.Book, err error) {
	defer func(begin time.Time) { s.observe("remove", begin, err) }(time.Now())
	return s.Service.Remove(ctx, id)
}
