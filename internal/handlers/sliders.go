package handlers

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/thatcatcamp/themebuilder/internal/config"
	"github.com/thatcatcamp/themebuilder/internal/db"
	"github.com/thatcatcamp/themebuilder/internal/library"
	"github.com/thatcatcamp/themebuilder/internal/metrics"
	"github.com/thatcatcamp/themebuilder/internal/themes"
)

var errUnknownPreset = errors.New("unknown preset")

var generator atomic.Pointer[themes.Generator]

// SetGenerator installs the generator used by every handler, typically one
// built from the configured tuning.
func SetGenerator(g *themes.Generator) {
	generator.Store(g)
}

func currentGenerator() *themes.Generator {
	if g := generator.Load(); g != nil {
		return g
	}
	return themes.NewGenerator(themes.DefaultTuning())
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("finite", finiteFloat)
	}
}

// finiteFloat rejects NaN and infinities, which strconv happily parses from
// query strings.
func finiteFloat(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		x := f.Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	}
	return true
}

// sliderQuery holds the optional generator inputs from a query string.
// Absent sliders fall back to the preset, the saved theme or the configured
// defaults, in that order.
type sliderQuery struct {
	Warmth        *float64 `form:"warmth" binding:"omitempty,finite"`
	Saturation    *float64 `form:"saturation" binding:"omitempty,finite"`
	Contrast      *float64 `form:"contrast" binding:"omitempty,finite"`
	Accessibility *float64 `form:"accessibility" binding:"omitempty,finite"`
	Preset        string   `form:"preset"`
	Theme         string   `form:"theme"`
}

// overlay applies any explicitly given slider onto base.
func (q sliderQuery) overlay(base themes.Sliders) themes.Sliders {
	if q.Warmth != nil {
		base.Warmth = *q.Warmth
	}
	if q.Saturation != nil {
		base.Saturation = *q.Saturation
	}
	if q.Contrast != nil {
		base.Contrast = *q.Contrast
	}
	if q.Accessibility != nil {
		base.Accessibility = *q.Accessibility
	}
	return base
}

// resolveSliders binds the query and works out the effective inputs.
// It returns the preset name when one was applied.
func resolveSliders(c *gin.Context) (themes.Sliders, string, error) {
	var q sliderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return themes.Sliders{}, "", fmt.Errorf("%w: %v", themes.ErrInvalidInput, err)
	}

	base := config.DefaultSliders()
	switch {
	case q.Preset != "":
		preset := themes.GetPreset(q.Preset)
		if preset == nil {
			return themes.Sliders{}, "", fmt.Errorf("%w: %s", errUnknownPreset, q.Preset)
		}
		base = preset.Sliders
	case q.Theme != "":
		saved, err := library.GetThemeByName(db.GetDB(), q.Theme)
		if err != nil {
			return themes.Sliders{}, "", err
		}
		base = saved.Sliders()
	}

	return q.overlay(base), q.Preset, nil
}

// generate runs the current generator and records the outcome.
func generate(s themes.Sliders, surface string) (*themes.Palette, error) {
	p, err := currentGenerator().Generate(s)
	if err != nil {
		metrics.GenerateErrors.WithLabelValues("invalid_input").Inc()
		return nil, err
	}

	metrics.PalettesGenerated.WithLabelValues(surface).Inc()
	if p.Clamped {
		metrics.PalettesClamped.Inc()
	}
	return p, nil
}
