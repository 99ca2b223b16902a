package experiment

import (
	"errors"
	"fmt"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/engine"
	"github.com/san-kum/algolab/internal/frame"
	"github.com/san-kum/algolab/internal/metrics"
)

var (
	ErrUnknownAlgorithm = errors.New("experiment: unknown algorithm")
	ErrNotSetup         = errors.New("experiment: not set up")
)

type factory func(frame.Lang) drivers.Driver

type entry struct {
	name string
	new  factory
	desc string
}

// Registry maps each category to its drivers in display order. The first
// driver of a category is its default.
type Registry struct {
	algos map[drivers.Category][]entry
}

func NewRegistry() *Registry {
	r := &Registry{algos: make(map[drivers.Category][]entry)}

	r.add(drivers.Sorting, "bubble", func(l frame.Lang) drivers.Driver { return drivers.NewBubble(l) },
		"Bubble Sort adalah algoritma pengurutan sederhana yang berulang kali menelusuri daftar, membandingkan elemen yang berdekatan dan menukarnya jika urutannya salah. Penelusuran diulang hingga daftar tersebut diurutkan.")
	r.add(drivers.Sorting, "selection", func(l frame.Lang) drivers.Driver { return drivers.NewSelection(l) },
		"Selection Sort membagi daftar menjadi dua bagian: terurut dan tidak terurut. Algoritma ini berulang kali menemukan elemen minimum dari bagian yang tidak terurut dan memindahkannya ke akhir bagian yang terurut.")
	r.add(drivers.Sorting, "insertion", func(l frame.Lang) drivers.Driver { return drivers.NewInsertion(l) },
		"Insertion Sort membangun array yang diurutkan satu per satu. Algoritma ini mengambil satu elemen dari data yang belum diurutkan dan memasukkannya ke posisi yang benar di bagian yang sudah terurut.")

	r.add(drivers.Searching, "linear", func(l frame.Lang) drivers.Driver { return drivers.NewLinear(l) },
		"Linear Search adalah metode pencarian sekuensial. Ia secara berurutan memeriksa setiap elemen dalam daftar sampai elemen target ditemukan atau seluruh daftar telah diperiksa.")
	r.add(drivers.Searching, "binary", func(l frame.Lang) drivers.Driver { return drivers.NewBinary(l) },
		"Binary Search adalah algoritma pencarian efisien yang bekerja pada array terurut. Ia membandingkan elemen target dengan elemen tengah, dan jika tidak sama, setengah bagian di mana target tidak mungkin ada akan dieliminasi.")

	return r
}

func (r *Registry) add(c drivers.Category, name string, fn factory, desc string) {
	r.algos[c] = append(r.algos[c], entry{name: name, new: fn, desc: desc})
}

func (r *Registry) lookup(c drivers.Category, name string) (entry, error) {
	for _, e := range r.algos[c] {
		if e.name == name {
			return e, nil
		}
	}
	return entry{}, fmt.Errorf("%w: %s/%s", ErrUnknownAlgorithm, c, name)
}

func (r *Registry) GetDriver(c drivers.Category, name string, lang frame.Lang) (drivers.Driver, error) {
	e, err := r.lookup(c, name)
	if err != nil {
		return nil, err
	}
	return e.new(lang), nil
}

// Find resolves an algorithm name without knowing its category.
func (r *Registry) Find(name string) (drivers.Category, error) {
	for _, c := range drivers.Categories {
		if r.Has(c, name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

func (r *Registry) Has(c drivers.Category, name string) bool {
	_, err := r.lookup(c, name)
	return err == nil
}

// Algorithms lists the names of a category in display order.
func (r *Registry) Algorithms(c drivers.Category) []string {
	entries := r.algos[c]
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}
	return names
}

func (r *Registry) DefaultAlgorithm(c drivers.Category) string {
	if entries := r.algos[c]; len(entries) > 0 {
		return entries[0].name
	}
	return ""
}

// Description returns the algorithm's explanation, or the catalog's
// placeholder when none is registered.
func (r *Registry) Description(c drivers.Category, name string, lang frame.Lang) string {
	e, err := r.lookup(c, name)
	if err != nil || e.desc == "" {
		return lang.Format(frame.MsgNoDescription)
	}
	return e.desc
}

func (r *Registry) DefaultMetrics() []engine.Metric {
	return []engine.Metric{
		metrics.NewComparisons(),
		metrics.NewWrites(),
		metrics.NewFrames(),
		metrics.NewSortedness(),
	}
}
