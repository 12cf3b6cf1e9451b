package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/tile-track/decor"
	"github.com/lixenwraith/tile-track/generator"
	"github.com/lixenwraith/tile-track/grid"
	"github.com/lixenwraith/tile-track/outline"
	"github.com/lixenwraith/tile-track/parameter"
	"github.com/lixenwraith/tile-track/render"
	"github.com/lixenwraith/tile-track/terrain"
	"github.com/lixenwraith/tile-track/track"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== TILE TRACK GENERATOR ===")

		fmt.Print("Mode: Outline (hull + smoothing) instead of tiles? [y/N]: ")
		modeStr, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(modeStr)) == "y" {
			runOutline(reader, os.Stdout)
		} else {
			runTiles(reader, os.Stdout)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func runTiles(r *bufio.Reader, w io.Writer) {
	cfg := generator.DefaultConfig()
	cfg.Length = getInt(r, fmt.Sprintf("Length (default %d): ", cfg.Length), cfg.Length)
	cfg.Seed = int64(getInt(r, fmt.Sprintf("Seed (default %d): ", cfg.Seed), int(cfg.Seed)))
	cfg.DecorCount = getInt(r, fmt.Sprintf("Decor count (default %d): ", cfg.DecorCount), cfg.DecorCount)
	cfg.Width = getInt(r, fmt.Sprintf("Playfield width (default %d): ", cfg.Width), cfg.Width)
	cfg.Height = getInt(r, fmt.Sprintf("Playfield height (default %d): ", cfg.Height), cfg.Height)

	fmt.Print("Decor mode: point instead of footprint? [y/N]: ")
	pointStr, _ := r.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(pointStr)) == "y" {
		cfg.Decor.Mode = decor.ModePoint
	}

	fmt.Fprintln(w, "\nGenerating...")
	startT := time.Now()
	res, err := generator.Generate(cfg)
	dur := time.Since(startT)

	if err != nil {
		var ue *track.UngenerableError
		if errors.As(err, &ue) {
			fmt.Fprintf(w, "Status: Ungenerable (length %d, %d attempts)\n", ue.Length, ue.Attempts)
		} else {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
		return
	}

	fmt.Fprintf(w, "Done in %v\n", dur)
	fmt.Fprintf(w, "Tiles: %d  Attempts: %d  Rect: %dx%d\n",
		len(res.Track.Tiles), res.Track.Attempts, res.Track.Rect.Width(), res.Track.Rect.Height())
	counts := res.Terrain.Counts()
	fmt.Fprintf(w, "Terrain: %d low, %d mid, %d high\n", counts[terrain.Low], counts[terrain.Mid], counts[terrain.High])
	fmt.Fprintf(w, "Decor: %d placed\n", len(res.Decor))
	if res.DecorWarning != nil {
		fmt.Fprintf(w, "Warning: %v\n", res.DecorWarning)
	}

	drawTiles(w, res)
}

func runOutline(r *bufio.Reader, w io.Writer) {
	cfg := outline.DefaultConfig()
	seed := int64(getInt(r, fmt.Sprintf("Seed (default %d): ", parameter.DefaultSeed), parameter.DefaultSeed))
	cfg.Points = getInt(r, fmt.Sprintf("Points (default %d): ", cfg.Points), cfg.Points)
	cfg.Refinements = getInt(r, fmt.Sprintf("Smoothing passes (default %d): ", cfg.Refinements), cfg.Refinements)
	cols := getInt(r, "Columns (default 72): ", 72)
	rows := getInt(r, "Rows (default 24): ", 24)

	o, err := outline.Generate(cfg, seed)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Hull: %d vertices  Line: %d points\n", len(o.Hull)-1, len(o.Line))
	drawOutline(w, o, cfg, cols, rows)
}

// drawTiles prints the playfield: track glyphs over decor over terrain shading
func drawTiles(w io.Writer, res *generator.Result) {
	glyphs := make(map[grid.Point]rune)
	for _, it := range res.Decor {
		g, _ := render.DecorGlyph(it.Shape.Name)
		for _, p := range it.Cells() {
			glyphs[p] = g
		}
	}
	for i, p := range res.Track.Tiles {
		for _, tc := range render.TrackCells(p) {
			glyphs[tc.Pos] = render.TrackGlyph(tc.Sides[0], tc.Sides[1])
		}
		if i == 0 {
			glyphs[p.Pos] = 'S'
		}
	}

	var sb strings.Builder
	for y := 0; y < res.Terrain.Height; y++ {
		for x := 0; x < res.Terrain.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if g, ok := glyphs[p]; ok {
				sb.WriteRune(g)
				continue
			}
			c, _ := res.Terrain.At(p)
			sb.WriteRune(terrainShade(c.Kind))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}

func terrainShade(k terrain.Kind) rune {
	switch k {
	case terrain.Low:
		return ' '
	case terrain.Mid:
		return '.'
	default:
		return ':'
	}
}

// drawOutline prints the rasterized line over a faint trace of the hull
func drawOutline(w io.Writer, o outline.Outline, cfg outline.Config, cols, rows int) {
	line := outline.Rasterize(o.Line, cfg.Width, cfg.Height, cols, rows)
	hull := outline.Rasterize(o.Hull[:len(o.Hull)-1], cfg.Width, cfg.Height, cols, rows)

	var sb strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := grid.Point{X: x, Y: y}
			switch {
			case line.Has(p):
				sb.WriteRune('█')
			case hull.Has(p):
				sb.WriteRune('·')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
