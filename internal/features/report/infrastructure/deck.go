package infrastructure

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// slidePartPattern matches the slide XML parts inside a PPTX package.
var slidePartPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Deck is a PPTX package opened for placeholder substitution. Slide parts
// are parsed as XML; every other part is carried through byte for byte.
type Deck struct {
	parts  []*deckPart
	slides []*deckPart // subset of parts, in slide number order
}

type deckPart struct {
	name    string
	data    []byte
	slideNo int
	doc     *etree.Document // non-nil for slide parts
	dirty   bool
}

// OpenDeck opens a PPTX package from its raw bytes.
func OpenDeck(data []byte) (*Deck, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open deck package: %w", err)
	}

	deck := &Deck{}
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open deck part %s: %w", f.Name, err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read deck part %s: %w", f.Name, err)
		}

		part := &deckPart{name: f.Name, data: body}
		if m := slidePartPattern.FindStringSubmatch(f.Name); m != nil {
			doc := etree.NewDocument()
			if err := doc.ReadFromBytes(body); err != nil {
				return nil, fmt.Errorf("failed to parse slide %s: %w", f.Name, err)
			}
			part.doc = doc
			part.slideNo, _ = strconv.Atoi(m[1])
			deck.slides = append(deck.slides, part)
		}
		deck.parts = append(deck.parts, part)
	}

	sort.Slice(deck.slides, func(i, j int) bool {
		return deck.slides[i].slideNo < deck.slides[j].slideNo
	})

	return deck, nil
}

// Fill replaces every literal {{KEY}} occurrence inside individual text runs
// with the mapped value, walking slides, shapes, paragraphs and runs in
// document order. Run formatting is left untouched; a placeholder split
// across two runs is not matched. A shape that fails to process is skipped
// so a single malformed shape cannot take down the whole pass.
func (d *Deck) Fill(mapping map[string]string) {
	for _, slide := range d.slides {
		for _, shape := range slide.doc.FindElements("//p:sp") {
			if fillShape(shape, mapping) {
				slide.dirty = true
			}
		}
	}
}

func fillShape(shape *etree.Element, mapping map[string]string) (changed bool) {
	// Skip shapes that fail to process instead of aborting the pass.
	defer func() { _ = recover() }()

	body := shape.SelectElement("p:txBody")
	if body == nil {
		return false
	}

	for _, para := range body.SelectElements("a:p") {
		for _, run := range para.SelectElements("a:r") {
			t := run.SelectElement("a:t")
			if t == nil {
				continue
			}
			text := t.Text()
			newText := text
			for key, value := range mapping {
				newText = strings.ReplaceAll(newText, "{{"+key+"}}", value)
			}
			if newText != text {
				t.SetText(newText)
				changed = true
			}
		}
	}
	return changed
}

// RunTexts returns the text of every run across all slides in document order.
func (d *Deck) RunTexts() []string {
	var texts []string
	for _, slide := range d.slides {
		for _, t := range slide.doc.FindElements("//a:r/a:t") {
			texts = append(texts, t.Text())
		}
	}
	return texts
}

// Bytes serializes the deck back to a PPTX package. Slides that were not
// modified, and all non-slide parts, are written back verbatim.
func (d *Deck) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, part := range d.parts {
		body := part.data
		if part.doc != nil && part.dirty {
			serialized, err := part.doc.WriteToBytes()
			if err != nil {
				return nil, fmt.Errorf("failed to serialize slide %s: %w", part.name, err)
			}
			body = serialized
		}

		f, err := w.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to write deck part %s: %w", part.name, err)
		}
		if _, err := f.Write(body); err != nil {
			return nil, fmt.Errorf("failed to write deck part %s: %w", part.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize deck package: %w", err)
	}
	return buf.Bytes(), nil
}
