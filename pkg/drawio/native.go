package drawio

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/utkloud/archdiagrams/pkg/diagram"
)

// mxfile is the Draw.io document envelope.
type mxfile struct {
	XMLName xml.Name `xml:"mxfile"`
	Host    string   `xml:"host,attr"`
	Pages   []page   `xml:"diagram"`
}

type page struct {
	ID    string `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Model model  `xml:"mxGraphModel"`
}

type model struct {
	Cells []cell `xml:"root>mxCell"`
}

type cell struct {
	ID       string    `xml:"id,attr"`
	Value    string    `xml:"value,attr,omitempty"`
	Style    string    `xml:"style,attr,omitempty"`
	Vertex   string    `xml:"vertex,attr,omitempty"`
	EdgeAttr string    `xml:"edge,attr,omitempty"`
	Parent   string    `xml:"parent,attr,omitempty"`
	Source   string    `xml:"source,attr,omitempty"`
	Target   string    `xml:"target,attr,omitempty"`
	Geometry *geometry `xml:"mxGeometry,omitempty"`
}

type geometry struct {
	Width    float64 `xml:"width,attr,omitempty"`
	Height   float64 `xml:"height,attr,omitempty"`
	Relative string  `xml:"relative,attr,omitempty"`
	As       string  `xml:"as,attr"`
}

// WriteNative writes the diagram as a minimal Draw.io mxGraph document at
// path. Unlike the graphviz2drawio path it carries no layout positions; the
// Draw.io editor lays the cells out on open. Nodes keep their labels, edges
// keep their labels and dash styles.
func WriteNative(d *diagram.Diagram, path string) error {
	cells := []cell{
		{ID: "0"},
		{ID: "1", Parent: "0"},
	}

	// Diagram node IDs are only unique per run; Draw.io cell ids must be
	// globally unique so re-imports never collide.
	ids := make(map[string]string)
	for _, n := range d.Nodes() {
		id := uuid.NewString()
		ids[n.ID] = id
		cells = append(cells, cell{
			ID:       id,
			Value:    n.Label,
			Style:    "rounded=1;whiteSpace=wrap;html=1;",
			Vertex:   "1",
			Parent:   "1",
			Geometry: &geometry{Width: 160, Height: 60, As: "geometry"},
		})
	}

	for _, e := range d.Edges() {
		style := "edgeStyle=orthogonalEdgeStyle;html=1;"
		switch e.Style.Style {
		case "dashed":
			style += "dashed=1;"
		case "dotted":
			style += "dashed=1;dashPattern=1 4;"
		}
		cells = append(cells, cell{
			ID:       uuid.NewString(),
			Value:    e.Style.Label,
			Style:    style,
			EdgeAttr: "1",
			Parent:   "1",
			Source:   ids[e.From.ID],
			Target:   ids[e.To.ID],
			Geometry: &geometry{Relative: "1", As: "geometry"},
		})
	}

	doc := mxfile{
		Host: "archdiagrams",
		Pages: []page{{
			ID:    uuid.NewString(),
			Name:  d.Title,
			Model: model{Cells: cells},
		}},
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal drawio: %w", err)
	}
	data = append([]byte(xml.Header), data...)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
