package frame

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	MinSize     = 5
	MaxSize     = 50
	DefaultSize = 15

	MinValue = 1
	MaxValue = 100

	MinSpeed     = 50
	MaxSpeed     = 1000
	DefaultSpeed = 500

	// PresortPause is the fixed pause after binary search sorts its input.
	PresortPause = time.Second
)

// Dataset is the working array; index order is the left-to-right bar order.
type Dataset []int

func (d Dataset) Clone() Dataset {
	c := make(Dataset, len(d))
	copy(c, d)
	return c
}

// IsSorted reports whether d is non-decreasing.
func (d Dataset) IsSorted() bool {
	for i := 1; i < len(d); i++ {
		if d[i-1] > d[i] {
			return false
		}
	}
	return true
}

// IndexOf returns the lowest index holding v, or -1.
func (d Dataset) IndexOf(v int) int {
	for i, x := range d {
		if x == v {
			return i
		}
	}
	return -1
}

// Distinct reports whether no value appears twice.
func (d Dataset) Distinct() bool {
	seen := make(map[int]struct{}, len(d))
	for _, v := range d {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Validate checks value range and uniqueness. Length is checked against
// [1, MaxSize] so that hand-written datasets shorter than MinSize are allowed.
func (d Dataset) Validate() error {
	if len(d) == 0 || len(d) > MaxSize {
		return fmt.Errorf("%w: %d", ErrSizeOutOfRange, len(d))
	}
	for _, v := range d {
		if v < MinValue || v > MaxValue {
			return fmt.Errorf("%w: %d", ErrValueOutOfRange, v)
		}
	}
	if !d.Distinct() {
		return ErrDuplicateValue
	}
	return nil
}

func (d Dataset) String() string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Generate draws n unique values in [MinValue, MaxValue] by rejection sampling.
func Generate(rng *rand.Rand, n int) (Dataset, error) {
	if n < MinSize || n > MaxSize {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrSizeOutOfRange, n, MinSize, MaxSize)
	}
	data := make(Dataset, 0, n)
	used := make(map[int]struct{}, n)
	for len(data) < n {
		v := rng.Intn(MaxValue) + MinValue
		if _, ok := used[v]; ok {
			continue
		}
		used[v] = struct{}{}
		data = append(data, v)
	}
	return data, nil
}

// Parse reads a comma or whitespace separated list such as "5,3,8,1".
func Parse(s string) (Dataset, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	data := make(Dataset, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse dataset: %w", err)
		}
		data = append(data, v)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}

// ClampSpeed limits s to [MinSpeed, MaxSpeed].
func ClampSpeed(s int) int {
	if s < MinSpeed {
		return MinSpeed
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}

// Delay converts a speed setting to the pause after each step.
// Faster speeds give shorter pauses: 1050-s ms for s in [50,1000].
func Delay(speed int) time.Duration {
	return time.Duration(1050-ClampSpeed(speed)) * time.Millisecond
}
