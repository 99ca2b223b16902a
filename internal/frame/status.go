package frame

import "fmt"

// Lang selects the status message catalog.
type Lang string

const (
	LangID Lang = "id"
	LangEN Lang = "en"

	DefaultLang = LangID
)

// MsgKey names one status message.
type MsgKey int

const (
	MsgReady MsgKey = iota
	MsgReset
	MsgStopped
	MsgInvalidTarget
	MsgBubbleCompare
	MsgBubbleSwap
	MsgSelectionCompare
	MsgSelectionSwap
	MsgInsertionPick
	MsgInsertionShift
	MsgInsertionPlace
	MsgLinearCheck
	MsgPresort
	MsgBinaryRange
	MsgFound
	MsgNotFound
	MsgSorted
	MsgNoDescription
)

var catalogs = map[Lang]map[MsgKey]string{
	LangID: {
		MsgReady:            "Siap memulai...",
		MsgReset:            "Array direset.",
		MsgStopped:          "Dihentikan.",
		MsgInvalidTarget:    "Masukkan angka yang ingin dicari!",
		MsgBubbleCompare:    "Cek %d & %d",
		MsgBubbleSwap:       "Tukar %d & %d",
		MsgSelectionCompare: "Cari min... Bandingkan %d & %d",
		MsgSelectionSwap:    "Tukar %d dengan min baru %d",
		MsgInsertionPick:    "Ambil %d untuk disisipkan",
		MsgInsertionShift:   "Geser %d ke kanan",
		MsgInsertionPlace:   "Sisipkan %d",
		MsgLinearCheck:      "Cek indeks %d: Nilai %d",
		MsgPresort:          "Sorting array dulu untuk Binary Search...",
		MsgBinaryRange:      "Cari range %d-%d. Tengah: %d (%d)",
		MsgFound:            "Ketemu! %d ada di indeks %d",
		MsgNotFound:         "Nilai %d tidak ditemukan.",
		MsgSorted:           "Selesai! Array sudah terurut.",
		MsgNoDescription:    "Deskripsi belum tersedia.",
	},
	LangEN: {
		MsgReady:            "Ready to start...",
		MsgReset:            "Array reset.",
		MsgStopped:          "Stopped.",
		MsgInvalidTarget:    "Enter the number to search for!",
		MsgBubbleCompare:    "Check %d & %d",
		MsgBubbleSwap:       "Swap %d & %d",
		MsgSelectionCompare: "Finding min... Compare %d & %d",
		MsgSelectionSwap:    "Swap %d with new min %d",
		MsgInsertionPick:    "Take %d to insert",
		MsgInsertionShift:   "Shift %d to the right",
		MsgInsertionPlace:   "Insert %d",
		MsgLinearCheck:      "Check index %d: value %d",
		MsgPresort:          "Sorting the array first for Binary Search...",
		MsgBinaryRange:      "Search range %d-%d. Middle: %d (%d)",
		MsgFound:            "Found! %d is at index %d",
		MsgNotFound:         "Value %d not found.",
		MsgSorted:           "Done! The array is sorted.",
		MsgNoDescription:    "No description available yet.",
	},
}

// Langs lists the supported catalogs.
var Langs = []Lang{LangID, LangEN}

// Valid reports whether a catalog exists for l.
func (l Lang) Valid() bool {
	_, ok := catalogs[l]
	return ok
}

// Format renders a status message. Unknown languages fall back to DefaultLang.
func (l Lang) Format(key MsgKey, args ...any) string {
	cat, ok := catalogs[l]
	if !ok {
		cat = catalogs[DefaultLang]
	}
	tmpl, ok := cat[key]
	if !ok {
		return ""
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
