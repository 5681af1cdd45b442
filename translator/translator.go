package translator

import (
	"context"
	"fmt"
	"log"

	"github.com/richinsley/goquad/shader"
	gst "github.com/richinsley/goshadertranslator"
)

var translator *gst.ShaderTranslator

// GetTranslator lazily builds the shared translator instance.
func GetTranslator(ctx context.Context) (*gst.ShaderTranslator, error) {
	if translator == nil {
		t, err := gst.NewShaderTranslator(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create shader translator: %w", err)
		}
		log.Printf("Shader translator initialized")
		translator = t
	}
	return translator, nil
}

// Result is a translated source pair plus the name the translator gave the
// position attribute.
type Result struct {
	Sources           shader.Sources
	PositionAttribute string
}

// Translate converts the WebGL2 source pair into the dialect of the current context.
func Translate(ctx context.Context, src shader.Sources, isGLES bool) (*Result, error) {
	t, err := GetTranslator(ctx)
	if err != nil {
		return nil, err
	}
	format := gst.OutputFormatGLSL410
	if isGLES {
		format = gst.OutputFormatESSL
	}

	vs, err := t.TranslateShader(src.Vertex, "vertex", gst.ShaderSpecWebGL2, format)
	if err != nil {
		return nil, fmt.Errorf("vertex shader translation failed: %w", err)
	}
	fs, err := t.TranslateShader(src.Fragment, "fragment", gst.ShaderSpecWebGL2, format)
	if err != nil {
		return nil, fmt.Errorf("fragment shader translation failed: %w", err)
	}

	res := &Result{
		Sources:           shader.Sources{Vertex: vs.Code, Fragment: fs.Code},
		PositionAttribute: shader.PositionAttribute,
	}
	if v, ok := vs.Variables[shader.PositionAttribute]; ok && v.MappedName != "" {
		res.PositionAttribute = v.MappedName
	}
	return res, nil
}
