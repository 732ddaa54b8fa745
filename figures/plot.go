// Package figures builds the dashboard's plotly figures from the tidy
// tables the shares package produces. It does no computation of its
// own.
package figures

import (
	"fmt"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
)

type Plot struct {
	Fig *grob.Fig
	Lay *grob.Layout
}

type Opt func(plot *Plot) *Plot

func NewPlot(opt ...Opt) *Plot {
	fig := &grob.Fig{}
	lay := &grob.Layout{}
	fig.Layout = lay
	p := &Plot{Fig: fig, Lay: lay}
	for _, o := range opt {
		o(p)
	}

	return p
}

func WithWidth(w float64) Opt {
	if w < 0.0 {
		panic(fmt.Errorf("negative width"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Width = w
		return p
	}
}

func WithHeight(h float64) Opt {
	if h < 0.0 {
		panic(fmt.Errorf("negative height"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Height = h
		return p
	}
}

func WithTitle(title string) Opt {
	return func(p *Plot) *Plot { p.Lay.Title = &grob.LayoutTitle{Text: title}; return p }
}

func WithLegend(show bool) Opt {
	return func(p *Plot) *Plot {
		if show {
			p.Lay.Showlegend = grob.True
		} else {
			p.Lay.Showlegend = grob.False
		}

		return p
	}
}

func WithXlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Xaxis == nil {
			p.Lay.Xaxis = &grob.LayoutXaxis{}
		}
		if p.Lay.Xaxis.Title == nil {
			p.Lay.Xaxis.Title = &grob.LayoutXaxisTitle{}
		}

		p.Lay.Xaxis.Title.Text = label
		return p
	}
}

func WithYlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Yaxis == nil {
			p.Lay.Yaxis = &grob.LayoutYaxis{}
		}
		if p.Lay.Yaxis.Title == nil {
			p.Lay.Yaxis.Title = &grob.LayoutYaxisTitle{}
		}

		p.Lay.Yaxis.Title.Text = label
		return p
	}
}

// WithPercentYaxis formats the y axis as whole percents.
func WithPercentYaxis() Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Yaxis == nil {
			p.Lay.Yaxis = &grob.LayoutYaxis{}
		}

		p.Lay.Yaxis.Tickformat = ".0%"
		return p
	}
}

// WithSlantedXticks angles the x tick labels so long bracket names
// stay readable.
func WithSlantedXticks() Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Xaxis == nil {
			p.Lay.Xaxis = &grob.LayoutXaxis{}
		}

		p.Lay.Xaxis.Tickangle = -45
		return p
	}
}

func WithGroupedBars() Opt {
	return func(p *Plot) *Plot {
		p.Lay.Barmode = grob.BarBarmodeGroup
		return p
	}
}

// AddBars adds one bar series over categorical x values.
func (p *Plot) AddBars(name string, x []string, y []float64) {
	tr := &grob.Bar{
		Type: grob.TraceTypeBar,
		Name: name,
		X:    x,
		Y:    y,
	}

	p.Fig.AddTraces(tr)
}

// AddLine adds one line-with-markers series over yearly x values.
func (p *Plot) AddLine(name string, x []int, y []float64, color string) {
	xf := make([]float64, len(x))
	for ind, xx := range x {
		xf[ind] = float64(xx)
	}

	tr := &grob.Scatter{
		Type: grob.TraceTypeScatter,
		Name: name,
		X:    xf,
		Y:    y,
		Mode: grob.ScatterMode("lines+markers"),
	}
	if color != "" {
		tr.Line = &grob.ScatterLine{Color: color}
	}

	p.Fig.AddTraces(tr)
}

// WriteHTML renders the figure as a standalone HTML page.
func (p *Plot) WriteHTML(fileName string) {
	offline.ToHtml(p.Fig, fileName)
}
