package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/c-myang/extra-topics/pkg/data"
	"github.com/c-myang/extra-topics/pkg/model"
	"github.com/c-myang/extra-topics/pkg/stats"
)

//
// K-means clustering of Pokémon base stats.
//
// --input    : Path to the Pokémon stats CSV (header row required)
// --cols     : Comma-separated numeric stat columns to cluster on
// --k        : Number of clusters
// --restarts : Independent seeded restarts; the lowest-inertia run wins
// --seed     : Master random seed
// --max-iter : Lloyd iteration cap per restart
// --x, --y   : Column indices (within --cols) used for the scatter plot
// --outdir   : Directory for the cluster plot
//

func main() {
	inputPath := flag.String("input", "pokemon.csv", "Path to input CSV file")
	cols := flag.String("cols", "HP,Attack,Defense,Sp. Atk,Sp. Def,Speed", "Stat columns")
	k := flag.Int("k", 4, "Number of clusters")
	restarts := flag.Int("restarts", 10, "Independent restarts")
	seed := flag.Int64("seed", 7, "Random seed")
	maxIter := flag.Int("max-iter", 100, "Iteration cap")
	xCol := flag.Int("x", 1, "Plot x-axis column index")
	yCol := flag.Int("y", 2, "Plot y-axis column index")
	outDir := flag.String("outdir", ".", "Output directory for plots")
	flag.Parse()

	names := strings.Split(*cols, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	if *xCol < 0 || *xCol >= len(names) || *yCol < 0 || *yCol >= len(names) {
		log.Fatalf("Plot axes out of range for %d columns", len(names))
	}

	table, err := data.Load(*inputPath)
	if err != nil {
		log.Fatalf("Error loading data: %v", err)
	}
	raw, err := table.Matrix(names...)
	if err != nil {
		log.Fatalf("Error extracting stat columns: %v", err)
	}
	fmt.Printf("Loaded %d rows, clustering on %v\n", len(raw), names)

	// Cluster in standardized units so no single stat dominates the
	// distance, then report centroids back in original units.
	scaler := stats.NewStandardScaler()
	scaled := scaler.FitTransform(raw)

	km, err := model.FitBest(scaled, *k, *maxIter, *restarts, *seed)
	if err != nil {
		log.Fatalf("Error clustering: %v", err)
	}
	fmt.Printf("Best of %d restarts: inertia %.2f\n", *restarts, km.Inertia)

	counts := make([]int, *k)
	for _, c := range km.Labels {
		counts[c]++
	}
	for c := 0; c < *k; c++ {
		fmt.Printf("\nCluster %d (%d members):\n", c, counts[c])
		for j, name := range names {
			orig := scaler.Mean[j] + scaler.Std[j]*km.Centroids[c][j]
			fmt.Printf("  %-10s %8.2f\n", name, orig)
		}
	}

	outFile := filepath.Join(*outDir, "pokemon_clusters.png")
	plotClusters(raw, km.Labels, centroidsOriginal(km.Centroids, scaler), names, *xCol, *yCol, outFile)
}

// centroidsOriginal maps standardized centroids back to raw stat units.
func centroidsOriginal(centroids [][]float64, scaler *stats.StandardScaler) [][]float64 {
	out := make([][]float64, len(centroids))
	for c, row := range centroids {
		orig := make([]float64, len(row))
		for j, v := range row {
			orig[j] = scaler.Mean[j] + scaler.Std[j]*v
		}
		out[c] = orig
	}
	return out
}

// plotClusters scatters the points on two chosen stats, colored by cluster,
// with centroids marked as crosses.
func plotClusters(X [][]float64, labels []int, centers [][]float64, names []string, xCol, yCol int, filename string) {
	p := plot.New()
	p.Title.Text = "Pokémon Stat Clusters"
	p.X.Label.Text = names[xCol]
	p.Y.Label.Text = names[yCol]

	colors := []color.RGBA{
		{R: 255, A: 255},
		{G: 180, A: 255},
		{B: 255, A: 255},
		{R: 230, G: 130, A: 255},
		{R: 160, B: 200, A: 255},
		{G: 140, B: 140, A: 255},
	}

	numClusters := len(centers)
	for c := 0; c < numClusters; c++ {
		pts := make(plotter.XYs, 0)
		for i, label := range labels {
			if label == c {
				pts = append(pts, plotter.XY{X: X[i][xCol], Y: X[i][yCol]})
			}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			log.Fatal(err)
		}
		s.Color = colors[c%len(colors)]
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("cluster %d", c), s)
	}

	centroidPts := make(plotter.XYs, len(centers))
	for c, row := range centers {
		centroidPts[c] = plotter.XY{X: row[xCol], Y: row[yCol]}
	}
	cs, err := plotter.NewScatter(centroidPts)
	if err != nil {
		log.Fatal(err)
	}
	cs.Color = color.RGBA{A: 255}
	cs.Shape = draw.CrossGlyph{}
	cs.Radius = vg.Points(5)
	p.Add(cs)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved cluster plot to %s\n", filename)
}
