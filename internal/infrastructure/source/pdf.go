package source

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

const defaultDPI = 150

// FitzPDFSource — страницы PDF, отрендеренные через MuPDF.
type FitzPDFSource struct {
	doc  *fitz.Document
	path string
	opts Options
}

func NewFitzPDFSource(path string, opts Options) (*FitzPDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	if opts.DPI <= 0 {
		opts.DPI = defaultDPI
	}
	return &FitzPDFSource{doc: doc, path: path, opts: opts}, nil
}

func (f *FitzPDFSource) FrameCount() int {
	return f.doc.NumPage()
}

func (f *FitzPDFSource) FrameName(index int) string {
	return fmt.Sprintf("page-%03d", index+1)
}

// Frame рендерит страницу. Для параллельной работы каждый вызов открывает свой документ,
// общий f.doc используется только для подсчёта страниц.
func (f *FitzPDFSource) Frame(index int) (image.Image, error) {
	workerDoc, err := fitz.New(f.path)
	if err != nil {
		return nil, err
	}
	defer workerDoc.Close()

	img, err := workerDoc.ImageDPI(index, float64(f.opts.DPI))
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", index+1, err)
	}
	return prepare(img, f.opts), nil
}

func (f *FitzPDFSource) Close() error {
	return f.doc.Close()
}
