package advisor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Function is a callable tool exposed to the model.
type Function interface {
	// Declare this function
	Declaration() *genai.FunctionDeclaration
	// Call this function
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// Toolbox is the set of functions an expert can call, in declaration order.
type Toolbox struct {
	functions []Function
}

// NewToolbox builds a toolbox from the given functions. Experts are
// functions too, so a facilitator's toolbox is its team of experts.
func NewToolbox[T Function](functions ...T) *Toolbox {
	tb := &Toolbox{functions: make([]Function, 0, len(functions))}
	for _, f := range functions {
		tb.functions = append(tb.functions, f)
	}
	return tb
}

// Declarations lists the toolbox for a generation config.
func (tb *Toolbox) Declarations() []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tb.functions))
	for _, f := range tb.functions {
		decls = append(decls, f.Declaration())
	}
	return decls
}

// Dispatch routes a function call from the model to its implementation.
func (tb *Toolbox) Dispatch(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
	for _, f := range tb.functions {
		if f.Declaration().Name == call.Name {
			return f.Call(ctx, call.ID, call.Args)
		}
	}
	return errorResponse(call.ID, call.Name, fmt.Errorf("unknown function %s", call.Name))
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}
