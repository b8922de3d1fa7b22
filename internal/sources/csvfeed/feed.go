// Package csvfeed reads daily closes from one CSV file per fund.
//
// Files are named <fund-id>.csv with a "date,close" header; dates use
// YYYY-MM-DD. Rows may be in any order and are sorted oldest first.
package csvfeed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bobmcallan/greenvest/internal/interfaces"
	"github.com/bobmcallan/greenvest/internal/models"
)

const dateLayout = "2006-01-02"

// Feed is a PriceSource backed by a directory of CSV files
type Feed struct {
	dir string
}

// New creates a feed reading from dir
func New(dir string) *Feed {
	return &Feed{dir: dir}
}

// Name identifies the feed
func (f *Feed) Name() string { return "csv" }

// GetPriceHistory reads <dir>/<fundID>.csv
func (f *Feed) GetPriceHistory(ctx context.Context, fundID string) (*models.PriceHistory, error) {
	if fundID == "" || strings.ContainsAny(fundID, `/\`) || strings.Contains(fundID, "..") {
		return nil, fmt.Errorf("%w: %q", interfaces.ErrFundNotFound, fundID)
	}

	path := filepath.Join(f.dir, fundID+".csv")
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", interfaces.ErrFundNotFound, fundID)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	points, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &models.PriceHistory{FundID: fundID, Source: f.Name(), Points: points}, nil
}

// parse reads date,close rows, skipping the header and blank close values
func parse(r io.Reader) ([]models.PricePoint, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("empty file")
	}

	dateCol, closeCol := 0, 1
	start := 0
	if header := records[0]; len(header) > 0 && !looksLikeDate(header[0]) {
		dateCol, closeCol = -1, -1
		for i, name := range header {
			switch strings.ToLower(strings.TrimSpace(name)) {
			case "date":
				dateCol = i
			case "close", "adj close", "adjusted_close":
				if closeCol == -1 || strings.EqualFold(name, "close") {
					closeCol = i
				}
			}
		}
		if dateCol == -1 || closeCol == -1 {
			return nil, errors.New("header must name date and close columns")
		}
		start = 1
	}

	points := make([]models.PricePoint, 0, len(records)-start)
	for n, line := range records[start:] {
		if len(line) <= max(dateCol, closeCol) || strings.TrimSpace(line[closeCol]) == "" {
			continue
		}
		date, err := time.Parse(dateLayout, strings.TrimSpace(line[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+start+1, err)
		}
		cl, err := strconv.ParseFloat(strings.TrimSpace(line[closeCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+start+1, err)
		}
		points = append(points, models.PricePoint{Date: date, Close: cl})
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}

func looksLikeDate(s string) bool {
	_, err := time.Parse(dateLayout, strings.TrimSpace(s))
	return err == nil
}
