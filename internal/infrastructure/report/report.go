// Package report сохраняет результаты пакетной обработки в YAML.
package report

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"table-finder/internal/domain/entity"
	"table-finder/internal/domain/geometry"
	"table-finder/internal/domain/outline"
)

const Version = "1"

// Report — результат обработки одного источника кадров.
type Report struct {
	Version     string       `yaml:"version"`
	Input       string       `yaml:"input"`
	GeneratedAt time.Time    `yaml:"generated_at"`
	Scans       []ScanRecord `yaml:"scans"`
}

type ScanRecord struct {
	ID        string         `yaml:"id"`
	Source    string         `yaml:"source"`
	Width     int            `yaml:"width"`
	Height    int            `yaml:"height"`
	Segments  int            `yaml:"segments"`
	Groups    int            `yaml:"groups"`
	Found     bool           `yaml:"found"`
	Outline   *OutlineRecord `yaml:"outline,omitempty"`
	CreatedAt time.Time      `yaml:"created_at"`
}

type OutlineRecord struct {
	Top    LineRecord `yaml:"top"`
	Bottom LineRecord `yaml:"bottom"`
	Left   LineRecord `yaml:"left"`
	Right  LineRecord `yaml:"right"`
}

// LineRecord — концы отрезка в виде [x, y].
type LineRecord struct {
	A [2]float64 `yaml:"a,flow"`
	B [2]float64 `yaml:"b,flow"`
}

func NewLineRecord(l geometry.Line) LineRecord {
	return LineRecord{
		A: [2]float64{l.A().X, l.A().Y},
		B: [2]float64{l.B().X, l.B().Y},
	}
}

func (r LineRecord) Line() geometry.Line {
	return geometry.NewLine(
		geometry.Point{X: r.A[0], Y: r.A[1]},
		geometry.Point{X: r.B[0], Y: r.B[1]},
	)
}

func NewOutlineRecord(o outline.Outline) OutlineRecord {
	return OutlineRecord{
		Top:    NewLineRecord(o.Top),
		Bottom: NewLineRecord(o.Bottom),
		Left:   NewLineRecord(o.Left),
		Right:  NewLineRecord(o.Right),
	}
}

func (r OutlineRecord) Outline() outline.Outline {
	return outline.Outline{
		Top:    r.Top.Line(),
		Bottom: r.Bottom.Line(),
		Left:   r.Left.Line(),
		Right:  r.Right.Line(),
	}
}

func NewScanRecord(s *entity.ScanResult) ScanRecord {
	rec := ScanRecord{
		ID:        s.ID,
		Source:    s.Source,
		Width:     s.ImageWidth,
		Height:    s.ImageHeight,
		Segments:  s.SegmentCount,
		Groups:    s.GroupCount,
		Found:     s.Found,
		CreatedAt: s.CreatedAt,
	}
	if s.Outline != nil {
		o := NewOutlineRecord(*s.Outline)
		rec.Outline = &o
	}
	return rec
}

// ScanResult восстанавливает результат проверки; UserID в отчёте не хранится.
func (r ScanRecord) ScanResult() *entity.ScanResult {
	scan := &entity.ScanResult{
		ID:           r.ID,
		Source:       r.Source,
		ImageWidth:   r.Width,
		ImageHeight:  r.Height,
		SegmentCount: r.Segments,
		GroupCount:   r.Groups,
		Found:        r.Found,
		CreatedAt:    r.CreatedAt,
	}
	if r.Outline != nil {
		o := r.Outline.Outline()
		scan.Outline = &o
	}
	return scan
}

// New собирает отчёт по результатам в порядке кадров.
func New(input string, scans []*entity.ScanResult, now time.Time) *Report {
	rep := &Report{
		Version:     Version,
		Input:       input,
		GeneratedAt: now,
		Scans:       make([]ScanRecord, 0, len(scans)),
	}
	for _, s := range scans {
		rep.Scans = append(rep.Scans, NewScanRecord(s))
	}
	return rep
}

// Found возвращает количество кадров, на которых найдена таблица.
func (r *Report) Found() int {
	n := 0
	for _, s := range r.Scans {
		if s.Found {
			n++
		}
	}
	return n
}

// Write записывает отчёт в YAML-файл
func Write(rep *Report, path string) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Read читает отчёт из YAML-файла
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rep Report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return nil, err
	}

	return &rep, nil
}

// EncodeOutline сериализует границы таблицы для хранения в одной колонке.
func EncodeOutline(o outline.Outline) (string, error) {
	data, err := yaml.Marshal(NewOutlineRecord(o))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func DecodeOutline(text string) (outline.Outline, error) {
	var rec OutlineRecord
	if err := yaml.Unmarshal([]byte(text), &rec); err != nil {
		return outline.Outline{}, err
	}
	return rec.Outline(), nil
}
