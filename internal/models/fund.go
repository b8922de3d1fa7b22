// Package models defines data structures for GreenVest
package models

import (
	"time"
)

// PriceSeries is an ordered sequence of daily closes, oldest first.
type PriceSeries []float64

// Last returns the most recent close, or 0 for an empty series.
func (s PriceSeries) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Holding is a top position of a fund, allocation in percent.
type Holding struct {
	Name       string  `json:"name"`
	Allocation float64 `json:"allocation"`
}

// Fund is a catalogue entry for a green investment fund
type Fund struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Symbol       string    `json:"symbol"`
	Value        float64   `json:"value"`
	Change       float64   `json:"change"` // percent change on the day
	Color        string    `json:"color,omitempty"`
	AUM          float64   `json:"aum"`
	TER          float64   `json:"ter"` // total expense ratio, percent
	PriceAtOpen  float64   `json:"price_at_open"`
	PriceAtClose float64   `json:"price_at_close"`
	IssuedDate   string    `json:"issued_date"`
	VintageRange string    `json:"vintage_range,omitempty"`
	Description  string    `json:"description"`
	Holdings     []Holding `json:"holdings"`
}

// PricePoint is a single daily close
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceHistory holds the daily closes for a fund, oldest first
type PriceHistory struct {
	FundID string       `json:"fund_id"`
	Source string       `json:"source,omitempty"`
	Points []PricePoint `json:"points"`
}

// Closes returns the close prices as a PriceSeries.
func (h *PriceHistory) Closes() PriceSeries {
	if h == nil {
		return nil
	}
	closes := make(PriceSeries, len(h.Points))
	for i, p := range h.Points {
		closes[i] = p.Close
	}
	return closes
}

// Dates returns the point dates in order.
func (h *PriceHistory) Dates() []time.Time {
	if h == nil {
		return nil
	}
	dates := make([]time.Time, len(h.Points))
	for i, p := range h.Points {
		dates[i] = p.Date
	}
	return dates
}
