package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/covercircle"
	"github.com/osuushi/covercircle/advanced"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	window  = kingpin.Flag("window", "Number of points in the sliding window.").Short('w').Default("16").Int()
	pngPath = kingpin.Flag("png", "Render the final window to this PNG file.").String()
	catPNG  = kingpin.Flag("imgcat", "Print the render to the terminal (iTerm only).").Bool()
	scale   = kingpin.Flag("scale", "Render scale, in pixels per unit.").Default("20").Float64()
	debug   = kingpin.Flag("debug", "Log hull changes.").Bool()
)

// Demo of sliding cover circles. Input on stdin should be newline separated
// points in the form "x y". Each point is pushed onto the window, the oldest
// point is popped once the window is full, and the cover circle is printed
// after every step.
func main() {
	kingpin.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *window <= 0 {
		log.Fatal().Int("window", *window).Msg("window must be positive")
	}

	points, err := readPoints(os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("could not read points")
	}
	log.Info().Int("points", len(points)).Int("window", *window).Msg("read input")

	cloud, err := slide(points, *window, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("cloud became inconsistent")
	}

	if *pngPath == "" {
		return
	}
	if err := cloud.SavePNG(*pngPath, *scale); err != nil {
		log.Fatal().Err(err).Str("path", *pngPath).Msg("could not save render")
	}
	log.Info().Str("path", *pngPath).Msg("saved render")
	if *catPNG {
		advanced.PrintImage(*pngPath, os.Stdout)
	}
}

// Push every point through a window of the given size, printing one line per
// step.
func slide(points []covercircle.Point, size int, out io.Writer) (cloud *covercircle.Cloud, err error) {
	defer func() {
		recoveredErr := advanced.HandleCoverPanicRecover(recover())
		if recoveredErr != nil {
			cloud = nil
			err = recoveredErr
		}
	}()

	cloud = covercircle.NewCloud()
	for i, point := range points {
		cloud.Push(point)
		if cloud.Len() > size {
			cloud.Pop()
		}
		circle := cloud.MinimumCoverCircle()
		fmt.Fprintf(out, "%s %s hull=%d interior=%d %s\n",
			aurora.Blue(fmt.Sprintf("%4d", i)),
			point,
			len(cloud.Hull()),
			len(cloud.Interior()),
			aurora.Cyan(circle),
		)
	}
	return cloud, nil
}

func readPoints(in io.Reader) ([]covercircle.Point, error) {
	points := []covercircle.Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (covercircle.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return covercircle.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return covercircle.Point{}, errors.Wrap(err, "bad x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return covercircle.Point{}, errors.Wrap(err, "bad y")
	}
	point := covercircle.Point{X: x, Y: y}
	if !point.IsFinite() {
		return covercircle.Point{}, errors.Errorf("point %v is not finite", point)
	}
	return point, nil
}
