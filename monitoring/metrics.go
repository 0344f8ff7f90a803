package monitoring

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

var (
	bookingAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_attempts_total",
			Help: "Total booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	bookingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "booking_duration_seconds",
			Help:    "Duration of booking transactions",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	seatsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seats_sold_total",
			Help: "Total seats sold across all matches",
		},
	)

	availableSeats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "match_available_seats",
			Help: "Current available seats per match",
		},
		[]string{"match_id"},
	)
)

// TrackBooking records the outcome and duration of one booking attempt.
func TrackBooking(outcome string, duration time.Duration) {
	bookingAttempts.WithLabelValues(outcome).Inc()
	bookingDuration.Observe(duration.Seconds())
}

// TrackSeatsSold adds the committed quantity of a booking.
func TrackSeatsSold(quantity int) {
	seatsSold.Add(float64(quantity))
}

// SetAvailableSeats updates the per-match availability gauge.
func SetAvailableSeats(matchID string, available int) {
	availableSeats.WithLabelValues(matchID).Set(float64(available))
}

type Monitor struct {
	redis    *redis.Client
	interval time.Duration
}

// NewMonitor starts a background collector that mirrors the Redis
// availability cache into the per-match gauges.
func NewMonitor(redisClient *redis.Client, interval time.Duration) *Monitor {
	monitor := &Monitor{redis: redisClient, interval: interval}

	go monitor.collectMetrics()

	return monitor
}

func (m *Monitor) collectMetrics() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for range ticker.C {
		ctx := context.Background()
		m.collectAvailability(ctx)
	}
}

func (m *Monitor) collectAvailability(ctx context.Context) {
	// Keys are written by the inventory service as match:avail:<id>.
	keys, _ := m.redis.Keys(ctx, "match:avail:*").Result()
	for _, key := range keys {
		matchID := key[len("match:avail:"):]
		value, err := m.redis.Get(ctx, key).Result()
		if err != nil {
			continue
		}
		if available, err := strconv.Atoi(value); err == nil {
			SetAvailableSeats(matchID, available)
		}
	}
}
