package agent

import (
	"context"
	"fmt"

	"github.com/borsatools/bist"
	"github.com/borsatools/bist/date"
	"github.com/borsatools/bist/isyatirim"
	"github.com/borsatools/bist/kap"
	"github.com/borsatools/bist/renderer"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator builds the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user asks about Borsa Istanbul stocks: prices, dividends, fundamentals,
			public disclosures, and what a savings plan into a stock would have returned.

			Learn about the experts' skills from the Tools and ask them questions. They are
			at your service and keep context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the best response.
			Tickers are plain Borsa Istanbul codes like THYAO or ASELS.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader is the expert with access to recent, grounded information.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		very well aware of financial products and institutions, and of the
		latest news about Turkish companies and markets.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in trading. You can search and find anything related to
			financial institutions, companies, markets and funds, with a focus on
			Borsa Istanbul. Leverage Google Search to ground your assertions.
				`}}},
		},
	}
}

// NewAnalyst is the expert reading the market data this module serves.
func NewAnalyst() *Expert {
	lib := []Function{reviewFunc, dividendsFunc, returnsFunc, disclosuresFunc}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It reads Borsa Istanbul market data:
		fundamental reviews with valuation and profitability ratios, dividend
		histories, public disclosures, and it can simulate what a contribution
		plan into a stock would have returned over a period.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst of Borsa Istanbul stocks. Use the available tools to
				read real market data before answering:
				  - fundamental review of a company
				  - cash dividend history
				  - return simulation of a contribution plan
				  - recent public disclosures
				Figures come back as markdown tables. Quote them, do not invent numbers.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("missing argument %q", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string but %T", name, v)
	}
	return s, nil
}

var reviewFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Review",
		Description: `Review computes the fundamental ratios of one company from its
		published financial statements: market cap, P/E, P/B, P/S, ROE, ROA,
		margins, EBITDA, debt and liquidity.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"ticker": {
					Type:        genai.TypeString,
					Description: "The Borsa Istanbul ticker, like THYAO.",
				},
			},
			Required: []string{"ticker"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown report of the company's fundamental ratios.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		ticker, err := stringArg(args, "ticker")
		if err != nil {
			return fail(id, "Review", err)
		}
		review, err := fetchReview(ticker)
		if err != nil {
			return fail(id, "Review", err)
		}
		return succeed(id, "Review", renderer.ReviewMarkdown(review))
	},
}

var dividendsFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "Dividends",
		Description: `Dividends lists the cash dividend history of one company, oldest first.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"ticker": {
					Type:        genai.TypeString,
					Description: "The Borsa Istanbul ticker, like THYAO.",
				},
			},
			Required: []string{"ticker"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown table of cash dividends.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		ticker, err := stringArg(args, "ticker")
		if err != nil {
			return fail(id, "Dividends", err)
		}
		dividends, err := isyatirim.NewClient().Dividends(ticker)
		if err != nil {
			return fail(id, "Dividends", err)
		}
		return succeed(id, "Dividends", renderer.DividendsMarkdown(ticker, dividends))
	},
}

var returnsFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Returns",
		Description: `Returns simulates a contribution plan into one stock over a period
		and reports the outcome in lira and dollars, with the dividend
		reinvestment alternative next to it.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"ticker": {
					Type:        genai.TypeString,
					Description: "The Borsa Istanbul ticker, like THYAO.",
				},
				"from": {
					Type:        genai.TypeString,
					Description: "Start of the period, YYYY-MM-DD.",
				},
				"to": {
					Type:        genai.TypeString,
					Description: "End of the period, YYYY-MM-DD.",
				},
				"amount": {
					Type:        genai.TypeNumber,
					Description: "Contribution amount in TRY, per event.",
				},
				"mode": {
					Type:        genai.TypeString,
					Description: "Either lump-sum (invest once) or periodic (invest monthly).",
				},
			},
			Required: []string{"ticker", "from", "to", "amount", "mode"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown report of the simulated returns, with and without dividend reinvestment.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		cfg, err := parseReturnsArgs(args)
		if err != nil {
			return fail(id, "Returns", err)
		}
		series, err := isyatirim.NewProvider().Series(cfg.Ticker, cfg.Range)
		if err != nil {
			return fail(id, "Returns", err)
		}
		comparison, err := bist.Compare(cfg, series)
		if err != nil {
			return fail(id, "Returns", err)
		}
		return succeed(id, "Returns", renderer.ComparisonMarkdown(comparison))
	},
}

func parseReturnsArgs(args map[string]any) (bist.SimulationConfig, error) {
	var cfg bist.SimulationConfig

	ticker, err := stringArg(args, "ticker")
	if err != nil {
		return cfg, err
	}
	from, err := stringArg(args, "from")
	if err != nil {
		return cfg, err
	}
	to, err := stringArg(args, "to")
	if err != nil {
		return cfg, err
	}
	fromDay, err := date.Parse(from)
	if err != nil {
		return cfg, fmt.Errorf("argument 'from' must be a valid date: %w", err)
	}
	toDay, err := date.Parse(to)
	if err != nil {
		return cfg, fmt.Errorf("argument 'to' must be a valid date: %w", err)
	}
	rng, err := date.NewRange(fromDay, toDay)
	if err != nil {
		return cfg, err
	}
	amount, ok := args["amount"].(float64)
	if !ok {
		return cfg, fmt.Errorf("argument 'amount' is not a number but %T", args["amount"])
	}
	modeArg, err := stringArg(args, "mode")
	if err != nil {
		return cfg, err
	}
	mode, err := bist.ParseMode(modeArg)
	if err != nil {
		return cfg, err
	}

	cfg.Ticker = ticker
	cfg.Range = rng
	cfg.Mode = mode
	cfg.Amount = decimal.NewFromFloat(amount)
	return cfg, nil
}

var disclosuresFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Disclosures",
		Description: `Disclosures lists the recent public filings of Borsa Istanbul
		companies: financial reports, material events and announcements.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"days": {
					Type:        genai.TypeInteger,
					Description: "How many days back to look, at most 180. Default 7.",
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown table of filings, newest first, with links.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		days := 7
		if v, ok := args["days"].(float64); ok {
			days = int(v)
		}
		disclosures, err := kap.NewClient().Disclosures(days, kap.All)
		if err != nil {
			return fail(id, "Disclosures", err)
		}
		return succeed(id, "Disclosures", renderer.DisclosuresMarkdown(disclosures))
	},
}

// fetchReview assembles a Review from the portal: statements, current price
// and previous close.
func fetchReview(ticker string) (*bist.Review, error) {
	client := isyatirim.NewClient()

	statement, err := client.FinancialStatements(ticker, date.Today().Year())
	if err != nil {
		return nil, err
	}

	today := date.Today()
	quotes, err := client.PriceHistory(ticker, date.Range{From: today.Add(-14), To: today})
	if err != nil {
		return nil, err
	}
	if len(quotes) < 2 {
		return nil, fmt.Errorf("not enough recent quotes for %s", ticker)
	}
	last, prev := quotes[len(quotes)-1], quotes[len(quotes)-2]

	return bist.NewReview(ticker, statement, last.Close, prev.Close), nil
}
