package llm

import (
	"encoding/json"
	"strings"

	"quizbot/internal/domain"
	"quizbot/internal/logger"

	"go.uber.org/zap"
)

// completionEnvelope is the decoded shape of the upstream response. Only
// choices[0].message.content and the error envelope are consumed; every
// other upstream field is ignored.
type completionEnvelope struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// extractContent decodes the envelope, rejects upstream error envelopes and
// missing choices/content, and returns the message content with any
// surrounding code fences stripped.
func extractContent(raw string) (string, error) {
	var envelope completionEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		logger.Get().Error("Failed to decode completion envelope",
			zap.Error(err), zap.String("raw_body", raw))
		return "", domain.NewMalformedEnvelopeError(err)
	}

	if envelope.Error != nil {
		return "", domain.NewUpstreamError(envelope.Error.Message)
	}

	if len(envelope.Choices) == 0 {
		return "", domain.NewMissingChoicesError()
	}

	content := envelope.Choices[0].Message.Content
	if content == nil {
		return "", domain.NewMissingContentError()
	}

	return stripCodeFences(*content), nil
}

// stripCodeFences removes a leading fence line (``` optionally followed by a
// language tag) and a trailing fence if present, then trims whitespace.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if nl := strings.IndexByte(s, '\n'); nl != -1 {
			s = s[nl+1:]
		} else {
			s = ""
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ExtractQuizItems turns a raw completion response into typed quiz
// candidates. The model occasionally wraps its array in stray prose, so the
// array is located by scanning for the outermost brackets before decoding.
// An empty array is a valid result, not an error.
func ExtractQuizItems(raw string) ([]domain.QuizCandidate, error) {
	content, err := extractContent(raw)
	if err != nil {
		return nil, err
	}

	start := strings.IndexByte(content, '[')
	end := strings.LastIndexByte(content, ']')
	if start == -1 || end == -1 || end <= start {
		logger.Get().Error("No JSON array found in model response",
			zap.String("raw_body", raw))
		return nil, domain.NewNoJSONArrayFoundError()
	}

	candidates := []domain.QuizCandidate{}
	if err := json.Unmarshal([]byte(content[start:end+1]), &candidates); err != nil {
		logger.Get().Error("Failed to decode quiz candidates",
			zap.Error(err), zap.String("raw_body", raw))
		return nil, domain.NewCandidateDecodeError(err)
	}

	return candidates, nil
}

// ExtractDescribeSentences turns a raw completion response into the sentence
// fragments of a description. Unlike the quiz path the whole content is
// expected to be the JSON array; there is no bracket scan.
func ExtractDescribeSentences(raw string) ([]string, error) {
	content, err := extractContent(raw)
	if err != nil {
		return nil, err
	}

	sentences := []string{}
	if err := json.Unmarshal([]byte(content), &sentences); err != nil {
		logger.Get().Error("Failed to decode description sentences",
			zap.Error(err), zap.String("raw_body", raw))
		return nil, domain.NewCandidateDecodeError(err)
	}

	return sentences, nil
}
