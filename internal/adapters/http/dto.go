package http

// InterpretRequest is the JSON body of POST /v1/interpret.
type InterpretRequest struct {
	ResultName        string `json:"resultName"`
	ResultDescription string `json:"resultDescription"`
	ResultFortune     string `json:"resultFortune"`
	Question          string `json:"question"`
	Lang              string `json:"lang,omitempty"`
}

// InterpretResponse is the JSON shape returned by POST /v1/interpret.
type InterpretResponse struct {
	Interpretation string      `json:"interpretation"`
	Category       string      `json:"category"`
	SourceData     SourceData  `json:"sourceData"`
	Prompt         *PromptResp `json:"prompt,omitempty"`
}

type SourceData struct {
	HexagramName           string `json:"hexagramName"`
	FiveElements           string `json:"fiveElements"`
	Fortune                string `json:"fortune"`
	Direction              string `json:"direction"`
	CategoryInterpretation string `json:"categoryInterpretation"`
	CoreCharacteristics    string `json:"coreCharacteristics"`
}

type PromptResp struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// DivinationRequest is the JSON body of POST /v1/divinations. Hour is a
// traditional period (1-12), ClockHour a 24-hour clock hour; one is required.
type DivinationRequest struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Hour      *int   `json:"hour,omitempty"`
	ClockHour *int   `json:"clockHour,omitempty"`
	Question  string `json:"question"`
	Lang      string `json:"lang,omitempty"`
}

// DivinationResponse is the JSON shape returned by POST /v1/divinations.
// Error is set when the interpretation is the fallback text.
type DivinationResponse struct {
	Lunar          LunarResp            `json:"lunar"`
	Hour           HourResp             `json:"hour"`
	Position       PositionResp         `json:"position"`
	Category       string               `json:"category"`
	CategorySlug   string               `json:"categorySlug"`
	Interpretation string               `json:"interpretation"`
	SourceData     SourceData           `json:"sourceData"`
	Prompt         *PromptResp          `json:"prompt,omitempty"`
	Error          *GenerationErrorResp `json:"error,omitempty"`
	Meta           MetaResp             `json:"meta"`
}

type LunarResp struct {
	Year  int  `json:"year"`
	Month int  `json:"month"`
	Day   int  `json:"day"`
	Leap  bool `json:"leap"`
}

type HourResp struct {
	ID     int    `json:"id"`
	Branch string `json:"branch"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Label  string `json:"label"`
}

type PositionResp struct {
	ID          int    `json:"id"`
	Position    int    `json:"position"`
	Name        string `json:"name"`
	Canonical   string `json:"canonical"`
	Element     string `json:"element"`
	Fortune     string `json:"fortune"`
	Direction   string `json:"direction"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Lang        string `json:"lang"`
}

type GenerationErrorResp struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type MetaResp struct {
	Model     string `json:"model,omitempty"`
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
