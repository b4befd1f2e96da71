package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(day int) time.Time { return time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC) }

func ptr(t time.Time) *time.Time { return &t }

func TestDateWindow(t *testing.T) {
	w := DateWindow{Start: ptr(at(10)), End: ptr(at(20))}
	assert.False(t, w.Empty())

	assert.True(t, w.Contains(at(10)))
	assert.True(t, w.Contains(at(20)))
	assert.True(t, w.Contains(at(15)))
	assert.False(t, w.Contains(at(9)))
	assert.False(t, w.Contains(at(21)))

	assert.True(t, DateWindow{}.Contains(at(1)))
	assert.True(t, DateWindow{Start: ptr(at(5))}.Contains(at(30)))
	assert.False(t, DateWindow{End: ptr(at(5))}.Contains(at(30)))
}

func TestDateWindow_StartAfterEnd(t *testing.T) {
	w := DateWindow{Start: ptr(at(20)), End: ptr(at(10))}
	assert.True(t, w.Empty())
	assert.False(t, w.Contains(at(15)))

	orders := []Summary{
		{ID: "a", Status: StatusDelivered, TotalAmount: dec("100.00"), CreatedAt: at(15)},
		{ID: "b", Status: StatusShipped, TotalAmount: dec("50.50"), CreatedAt: at(10)},
	}
	assert.True(t, Revenue(orders, w).IsZero())
	assert.Zero(t, Count(orders, w))
}

func TestRevenueAndCount(t *testing.T) {
	orders := []Summary{
		{ID: "a", Status: StatusDelivered, TotalAmount: dec("100.00"), CreatedAt: at(5)},
		{ID: "b", Status: StatusShipped, TotalAmount: dec("50.50"), CreatedAt: at(10)},
		{ID: "c", Status: StatusPending, TotalAmount: dec("999.99"), CreatedAt: at(10)},
		{ID: "d", Status: StatusCancelled, TotalAmount: dec("10.00"), CreatedAt: at(12)},
		{ID: "e", Status: StatusDelivered, TotalAmount: dec("25.00"), CreatedAt: at(25)},
	}

	assert.True(t, dec("175.50").Equal(Revenue(orders, DateWindow{})))
	assert.Equal(t, 5, Count(orders, DateWindow{}))

	w := DateWindow{Start: ptr(at(6)), End: ptr(at(20))}
	assert.True(t, dec("50.50").Equal(Revenue(orders, w)))
	assert.Equal(t, 3, Count(orders, w))

	assert.True(t, Revenue(nil, DateWindow{}).IsZero())
}
