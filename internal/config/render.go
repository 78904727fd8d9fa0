package config

import (
	"os"
	"sync"
)

type RenderConfig struct {
	Compiler   string
	SupportDir string
}

var (
	renderConfig *RenderConfig
	renderOnce   sync.Once
)

func LoadRenderConfig() *RenderConfig {
	renderOnce.Do(func() {
		compiler := os.Getenv("LATEX_COMPILER")
		if compiler == "" {
			compiler = "pdflatex"
		}
		renderConfig = &RenderConfig{
			Compiler:   compiler,
			SupportDir: os.Getenv("LATEX_SUPPORT_DIR"),
		}
	})
	return renderConfig
}
