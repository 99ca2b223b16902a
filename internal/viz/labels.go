package viz

import "github.com/san-kum/algolab/internal/frame"

type labels struct {
	title, welcome, created   string
	category, algorithm       string
	target, targetHint        string
	size, speed, description  string
	start, stop, reset, quit  string
	theme, edit, cycle, sizes string
}

var catalog = map[frame.Lang]labels{
	frame.LangID: {
		title:       "searching - sorting",
		welcome:     "Selamat datang, ",
		created:     "Akun Dibuat: ",
		category:    "Kategori",
		algorithm:   "Algoritma",
		target:      "Nilai yang Dicari",
		targetHint:  "Contoh: 42",
		size:        "Ukuran Data",
		speed:       "Kecepatan",
		description: "Deskripsi Algoritma",
		start:       "mulai",
		stop:        "hentikan",
		reset:       "reset",
		quit:        "keluar",
		theme:       "tema",
		edit:        "isi nilai",
		cycle:       "ganti",
		sizes:       "ukuran",
	},
	frame.LangEN: {
		title:       "searching - sorting",
		welcome:     "Welcome, ",
		created:     "Account created: ",
		category:    "Category",
		algorithm:   "Algorithm",
		target:      "Search value",
		targetHint:  "e.g. 42",
		size:        "Data size",
		speed:       "Speed",
		description: "Algorithm description",
		start:       "start",
		stop:        "stop",
		reset:       "reset",
		quit:        "quit",
		theme:       "theme",
		edit:        "enter value",
		cycle:       "cycle",
		sizes:       "size",
	},
}

func labelsFor(l frame.Lang) labels {
	if lb, ok := catalog[l]; ok {
		return lb
	}
	return catalog[frame.DefaultLang]
}
