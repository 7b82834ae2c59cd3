package gemini

import "google.golang.org/genai"

// Structured-output schemas sent with the match, compare and polish requests.
// They mirror the result shapes in the ai package field for field; the
// provider is expected to answer with conforming JSON.

var winnerEnum = []string{"Resume A", "Resume B", "Tie"}

func matchSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"jobTitle":        {Type: genai.TypeString},
				"matchPercentage": {Type: genai.TypeNumber},
				"pros":            {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"cons":            {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"improvements":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"interviewQuestions": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"question": {Type: genai.TypeString},
							"answer":   {Type: genai.TypeString},
						},
						Required: []string{"question", "answer"},
					},
				},
				"reasoning": {Type: genai.TypeString},
			},
			Required: []string{"jobTitle", "matchPercentage", "pros", "cons", "improvements", "interviewQuestions", "reasoning"},
		},
	}
}

func comparisonSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"overallWinner": {Type: genai.TypeString, Enum: winnerEnum},
			"summary":       {Type: genai.TypeString},
			"categories": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":         {Type: genai.TypeString},
						"resumeAScore": {Type: genai.TypeNumber},
						"resumeBScore": {Type: genai.TypeNumber},
						"resumeANotes": {Type: genai.TypeString},
						"resumeBNotes": {Type: genai.TypeString},
						"winner":       {Type: genai.TypeString, Enum: winnerEnum},
					},
					Required: []string{"name", "resumeAScore", "resumeBScore", "resumeANotes", "resumeBNotes", "winner"},
				},
			},
		},
		Required: []string{"overallWinner", "summary", "categories"},
	}
}

func profileSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"fullName": {Type: genai.TypeString},
			"email":    {Type: genai.TypeString},
			"phone":    {Type: genai.TypeString},
			"linkedin": {Type: genai.TypeString},
			"summary":  {Type: genai.TypeString},
			"education": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"degree": {Type: genai.TypeString},
						"school": {Type: genai.TypeString},
						"year":   {Type: genai.TypeString},
					},
				},
			},
			"skills": {Type: genai.TypeString},
			"experience": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"role":     {Type: genai.TypeString},
						"company":  {Type: genai.TypeString},
						"duration": {Type: genai.TypeString},
						"details":  {Type: genai.TypeString},
					},
				},
			},
			"projects": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":         {Type: genai.TypeString},
						"link":          {Type: genai.TypeString},
						"technologies":  {Type: genai.TypeString},
						"description":   {Type: genai.TypeString},
						"contributions": {Type: genai.TypeString},
					},
				},
			},
			"awards": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":   {Type: genai.TypeString},
						"issuer":  {Type: genai.TypeString},
						"date":    {Type: genai.TypeString},
						"details": {Type: genai.TypeString},
					},
				},
			},
			"certifications": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":   {Type: genai.TypeString},
						"issuer": {Type: genai.TypeString},
						"year":   {Type: genai.TypeString},
					},
				},
			},
			"socialLinks": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"platform": {Type: genai.TypeString},
						"url":      {Type: genai.TypeString},
					},
				},
			},
			"interests": {Type: genai.TypeString},
		},
	}
}
