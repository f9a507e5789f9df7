package advisor

import (
	"context"
	"fmt"

	"github.com/nivesh/goalplan"
	"github.com/nivesh/goalplan/date"
	"github.com/nivesh/goalplan/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Loader provides the current plan document to the planner's tools.
type Loader func() (*goalplan.PlanDocument, error)

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	tools := NewToolbox(experts...)
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: tools.Declarations()},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his savings plan: his goals, whether they are
			funded, and what he should invest every month. Assume he knows his goals by name, and
			check the plan first to understand what they are.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. Never invent figures: every number you give the user must come from an
			expert's answer.
		`}}},
		},
		Tools: tools,
	}
}

// NewAnalyst creates the expert that grounds answers in recent market and
// product information through Google Search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an investment analyst,
		well aware of financial products, funds, interest rates and tax rules,
		and of the latest news about them.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an investment analyst. You can search and find about anything related to
			financial products, funds, interest rates, inflation and markets. You leverage
			Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewPlanner creates the expert in charge of reading the user's savings plan.
// Its tools load the plan through the given loader, so the chat always sees
// the plan as currently saved.
func NewPlanner(load Loader) *Expert {
	tools := NewToolbox(planSummary(load), goalDetail(load))

	return &Expert{
		Name: "Planner",
		Description: `This is the Planner. He is in charge of reading the user's savings plan.
		He can compute the relevant figures about the user's goals, assets and monthly investments.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: tools.Declarations()},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial planner in charge of the user's savings plan.
				You know how to use the Tools to extract relevant information about the user's
				goals, assets and suggested monthly investments.
				You are part of a team of experts, yours is everything about the user's plan.
				They might ask you questions about it, pardon their approximative language and
				figure out what they meant.

				Use the available tools to get information about the user's plan:
				  - the full plan summary, goal by goal
				  - the detail of a single goal, including the retirement breakdown
			`}}},
		},
		Tools: tools,
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func planSummary(load Loader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "PlanSummary",
			Description: `PlanSummary computes the user's plan as of today: every goal with its
			inflation-adjusted target, the assets already linked to it, the blended return
			assumption and the suggested monthly investment, plus short and long horizon totals.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of the user's plan, one row per goal.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			doc, err := load()
			if err != nil {
				return errorResponse(id, "PlanSummary", err)
			}
			s := goalplan.NewPlanSummary(doc, date.Today())
			return &genai.FunctionResponse{
				ID:   id,
				Name: "PlanSummary",
				Response: map[string]any{
					"output": renderer.PlanMarkdown(s),
				},
			}
		},
	}
}

func goalDetail(load Loader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "GoalDetail",
			Description: `GoalDetail computes the full projection of a single goal, by name.
			For a retirement goal it includes the EPF/NPS corpus breakdown and the residual gap.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {
						Type:        genai.TypeString,
						Description: "The goal's name, as it appears in the plan summary.",
					},
				},
				Required: []string{"name"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of the goal's projection.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			doc, err := load()
			if err != nil {
				return errorResponse(id, "GoalDetail", err)
			}
			name, ok := args["name"].(string)
			if !ok {
				return errorResponse(id, "GoalDetail", fmt.Errorf("argument 'name' is not a string but %T", args["name"]))
			}
			for i := range doc.Goals {
				g := &doc.Goals[i]
				if g.Name != name {
					continue
				}
				p := goalplan.ProjectDocumentGoal(doc, g, date.Today())
				return &genai.FunctionResponse{
					ID:   id,
					Name: "GoalDetail",
					Response: map[string]any{
						"output": renderer.GoalMarkdown(p, doc.Settings.Currency),
					},
				}
			}
			return errorResponse(id, "GoalDetail", fmt.Errorf("no goal named %q in the plan", name))
		},
	}
}
