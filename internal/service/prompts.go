// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-code-review/models"
)

const chatSystemPrompt = "You are CodeBot, an expert AI assistant for code review, debugging, and programming help. Be concise, helpful, and friendly."

const analyzePromptTemplate = `You are an expert code reviewer. Analyze the following %[1]s code and return ONLY valid JSON.

Return exactly this JSON structure:
{
  "has_errors": true or false,
  "score": integer 0-100,
  "summary": "brief summary string",
  "errors": [
    {
      "type": "Bug or Security or Performance or BestPractice",
      "severity": "Critical or High or Medium or Low",
      "line": "line number or N/A",
      "description": "what the issue is",
      "fix": "how to fix it"
    }
  ]
}

If code has no issues at all, set has_errors to false and errors to empty array.
Do not include any text outside the JSON.

Code to review:
` + "```" + `%[1]s
%[2]s
` + "```"

const rewritePromptTemplate = `You are an expert %[1]s developer. Rewrite the following code to be clean, optimized, secure, and production-ready with proper documentation. Return only the improved code inside a single code block.

` + "```" + `%[1]s
%[2]s
` + "```"

var (
	analyzeParams = models.GenerationParams{Temperature: 0.1, MaxTokens: 3000}
	rewriteParams = models.GenerationParams{Temperature: 0.2, MaxTokens: 4000}
	chatParams    = models.GenerationParams{Temperature: 0.7, MaxTokens: 1024}
)

func analyzePrompt(language, code string) []models.Message {
	return []models.Message{{Role: models.RoleUser, Content: fmt.Sprintf(analyzePromptTemplate, language, code)}}
}

func rewritePrompt(language, code string) []models.Message {
	return []models.Message{{Role: models.RoleUser, Content: fmt.Sprintf(rewritePromptTemplate, language, code)}}
}

func chatPrompt(messages []models.Message) []models.Message {
	out := make([]models.Message, 0, len(messages)+1)
	out = append(out, models.Message{Role: models.RoleSystem, Content: chatSystemPrompt})
	return append(out, messages...)
}
