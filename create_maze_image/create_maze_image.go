// This defines a basic executable for generating a torch maze level and
// saving it as an image.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/yalue/image_utils"
	"github.com/yalue/torch_maze"
)

// Command-line settings, after applying environment defaults.
type settings struct {
	difficulty string
	width      int
	height     int
	loopRate   float64
	torches    int
	level      int
	randomSeed int64
	tilePixels int
	outFile    string
	print      bool
	verbose    bool
}

// Returns the level config for the given settings: the difficulty preset's
// config, with any explicitly set values replacing the preset's.
func (s *settings) levelConfig(log logrus.FieldLogger) (torch_maze.Config,
	error) {
	d, e := torch_maze.DifficultyByName(s.difficulty)
	if e != nil {
		return torch_maze.Config{}, e
	}
	toReturn := d.Config(s.level)
	if s.width > 0 {
		toReturn.Width = s.width
	}
	if s.height > 0 {
		toReturn.Height = s.height
	}
	if s.loopRate >= 0 {
		toReturn.LoopRate = s.loopRate
	}
	if s.torches >= 0 {
		toReturn.TorchCount = s.torches
	}
	toReturn.Logger = log
	return toReturn, toReturn.Validate()
}

func run() int {
	log := logrus.New()
	log.Out = os.Stderr
	defaults, e := loadEnvDefaults(log)
	if e != nil {
		log.WithError(e).Error("Invalid environment")
		return 1
	}

	var s settings
	flag.StringVar(&s.difficulty, "difficulty", defaults.Difficulty,
		"The difficulty preset: easy, medium or hard.")
	flag.IntVar(&s.width, "width", 0,
		"If positive, overrides the preset's maze width, in tiles. Must be "+
			"odd.")
	flag.IntVar(&s.height, "height", 0,
		"If positive, overrides the preset's maze height, in tiles. Must be "+
			"odd.")
	flag.Float64Var(&s.loopRate, "loop_rate", -1,
		"If not negative, overrides the fraction of loop walls to open.")
	flag.IntVar(&s.torches, "torches", -1,
		"If not negative, overrides the number of torches to place.")
	flag.IntVar(&s.level, "level", 1,
		"The level number, which determines the number of torches.")
	flag.Int64Var(&s.randomSeed, "random_seed", defaults.Seed,
		"If positive, specifies the random seed to use.")
	flag.IntVar(&s.tilePixels, "tile_pixels", defaults.TilePixels,
		"The width and height of each tile in the output image.")
	flag.StringVar(&s.outFile, "output_file", defaults.OutputFile,
		"The name of the .png file to which the maze will be saved.")
	flag.BoolVar(&s.print, "print", false,
		"If set, prints the maze to stdout.")
	flag.BoolVar(&s.verbose, "verbose", false,
		"If set, logs generation details.")
	flag.Parse()
	if s.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if (s.outFile == "") && !s.print {
		fmt.Println("Either -output_file or -print is required.")
		fmt.Println("Run with -help for more information.")
		return 1
	}

	cfg, e := s.levelConfig(log)
	if e != nil {
		log.WithError(e).Error("Invalid maze settings")
		return 1
	}
	level, e := torch_maze.NewLevel(cfg, s.randomSeed)
	if e != nil {
		log.WithError(e).Error("Failed generating maze")
		return 1
	}
	log.Infof("Generated %s OK.", level.GetInfo())
	if s.print {
		e = writePreview(os.Stdout, level)
		if e != nil {
			log.WithError(e).Error("Error printing maze")
			return 1
		}
	}
	if s.outFile == "" {
		return 0
	}

	finalPic, e := drawLevelDecorations(level, s.tilePixels)
	if e != nil {
		log.WithError(e).Error("Error adding maze decorations")
		return 1
	}
	f, e := os.Create(s.outFile)
	if e != nil {
		log.WithError(e).Errorf("Error creating output file %s", s.outFile)
		return 1
	}
	defer f.Close()
	e = png.Encode(f, image_utils.AddImageBorder(finalPic, color.White, 5))
	if e != nil {
		log.WithError(e).Errorf("Error writing image to %s", s.outFile)
		return 1
	}
	log.Infof("Image %s written OK.", s.outFile)
	return 0
}

func main() {
	os.Exit(run())
}
