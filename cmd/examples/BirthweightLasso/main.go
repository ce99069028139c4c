package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/c-myang/extra-topics/pkg/data"
	"github.com/c-myang/extra-topics/pkg/dataprep"
	"github.com/c-myang/extra-topics/pkg/loader"
	"github.com/c-myang/extra-topics/pkg/model"
)

//
// Lasso regression on the birthweight dataset.
//
// --input       : Path to the birthweight CSV (header row required)
// --response    : Response column. Default = bwt
// --categorical : Comma-separated categorical columns to indicator-encode
// --drop        : Comma-separated columns to exclude from the design matrix
// --sample      : Random subsample size (0 = use all rows)
// --seed        : Seed for sampling and fold assignment
// --folds       : Cross-validation folds
// --grid        : Number of lambda grid points
// --outdir      : Directory for the coefficient-path and CV-curve plots
//

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func main() {
	inputPath := flag.String("input", "birthwt.csv", "Path to input CSV file")
	response := flag.String("response", "bwt", "Response column")
	categorical := flag.String("categorical", "race,smoke,ht,ui", "Categorical columns")
	drop := flag.String("drop", "low", "Columns to exclude")
	sampleSize := flag.Int("sample", 100, "Random subsample size (0 = all rows)")
	seed := flag.Int64("seed", 42, "Random seed")
	folds := flag.Int("folds", 10, "Cross-validation folds")
	gridSize := flag.Int("grid", 60, "Lambda grid points")
	outDir := flag.String("outdir", ".", "Output directory for plots")
	flag.Parse()

	table, err := data.Load(*inputPath)
	if err != nil {
		log.Fatalf("Error loading data: %v", err)
	}
	fmt.Printf("Loaded %d rows from %s\n", table.Len(), *inputPath)

	rng := rand.New(rand.NewSource(*seed))
	if *sampleSize > 0 && *sampleSize < table.Len() {
		idx, err := loader.Sample(table.Len(), *sampleSize, rng)
		if err != nil {
			log.Fatalf("Error sampling rows: %v", err)
		}
		table, err = table.Rows(idx)
		if err != nil {
			log.Fatalf("Error subsetting rows: %v", err)
		}
		fmt.Printf("Sampled down to %d rows\n", table.Len())
	}

	design, y, err := dataprep.BuildDesign(table, *response, splitList(*categorical), splitList(*drop))
	if err != nil {
		log.Fatalf("Error building design matrix: %v", err)
	}
	n, p := design.X.Dims()
	fmt.Printf("Design matrix: %d rows, %d columns: %v\n", n, p, design.Names)

	lmax := model.LambdaMax(design.X, y)
	lambdas := model.LambdaGrid(lmax, 1e-3, *gridSize)
	path, err := model.FitLassoPath(design.X, y, model.NewPathConfig(lambdas))
	if err != nil {
		log.Fatalf("Error fitting lasso path: %v", err)
	}

	cvCfg := model.NewCVConfig(lambdas)
	cvCfg.Folds = *folds
	cvCfg.Seed = *seed
	cv, err := model.CrossValidate(design.X, y, cvCfg)
	if err != nil {
		log.Fatalf("Error cross-validating: %v", err)
	}

	fmt.Printf("\nlambda_max = %.4f\n", lmax)
	fmt.Printf("lambda_min = %.4f (CV error %.2f)\n", cv.LambdaMin, minOf(cv.MeanError))
	fmt.Printf("lambda_1se = %.4f\n", cv.SelectOneSE())
	reportSelected(path, cv.LambdaMin, design.Names, design.X, y)

	pathPlot := filepath.Join(*outDir, "coefficient_path.png")
	plotCoefficientPath(path, design.Names, pathPlot)
	cvPlot := filepath.Join(*outDir, "cv_curve.png")
	plotCVCurve(cv, cvPlot)
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// reportSelected prints the model at the chosen lambda.
func reportSelected(path *model.LassoPath, lambda float64, names []string, X *mat.Dense, y []float64) {
	for i := range path.Steps {
		step := &path.Steps[i]
		if step.Lambda != lambda {
			continue
		}
		preds := step.Predict(X)
		fmt.Printf("\nModel at lambda = %.4f (R² = %.4f, RMSE = %.2f, MAE = %.2f):\n",
			lambda, step.R2, model.RMSE(y, preds), model.MAE(y, preds))
		fmt.Printf("  %-16s %10.4f\n", "(intercept)", step.Intercept)
		for j, w := range step.Weights {
			if w != 0 {
				fmt.Printf("  %-16s %10.4f\n", names[j], w)
			}
		}
		return
	}
}

var palette = []color.RGBA{
	{R: 255, A: 255},
	{G: 180, A: 255},
	{B: 255, A: 255},
	{R: 230, G: 130, A: 255},
	{R: 160, B: 200, A: 255},
	{G: 140, B: 140, A: 255},
}

// plotCoefficientPath draws one line per feature: coefficient versus log10(lambda).
func plotCoefficientPath(path *model.LassoPath, names []string, filename string) {
	p := plot.New()
	p.Title.Text = "Lasso Coefficient Path"
	p.X.Label.Text = "log10(lambda)"
	p.Y.Label.Text = "Coefficient"

	for j, name := range names {
		coefs := path.Coefficients(j)
		pts := make(plotter.XYs, len(coefs))
		for i, c := range coefs {
			pts[i].X = math.Log10(path.Steps[i].Lambda)
			pts[i].Y = c
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			log.Fatal(err)
		}
		l.Color = palette[j%len(palette)]
		p.Add(l)
		p.Legend.Add(name, l)
	}
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved coefficient path plot to %s\n", filename)
}

// plotCVCurve draws mean cross-validated error versus log10(lambda).
func plotCVCurve(cv *model.CVResult, filename string) {
	p := plot.New()
	p.Title.Text = "Cross-Validated Error"
	p.X.Label.Text = "log10(lambda)"
	p.Y.Label.Text = "Mean held-out MSE"

	pts := make(plotter.XYs, len(cv.Lambdas))
	for i := range cv.Lambdas {
		pts[i].X = math.Log10(cv.Lambdas[i])
		pts[i].Y = cv.MeanError[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		log.Fatal(err)
	}
	l.Color = color.RGBA{R: 200, A: 255}
	p.Add(l)

	s, err := plotter.NewScatter(pts)
	if err != nil {
		log.Fatal(err)
	}
	p.Add(s)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved CV curve plot to %s\n", filename)
}
