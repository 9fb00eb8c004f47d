package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/translate"
)

// translateAPI is the slice of the AWS Translate client the proxy needs.
type translateAPI interface {
	TranslateText(ctx context.Context, params *translate.TranslateTextInput, optFns ...func(*translate.Options)) (*translate.TranslateTextOutput, error)
}

// Translator converts English text to Hindi through AWS Translate. The language
// pair is fixed; callers only supply the text.
type Translator struct {
	client translateAPI
}

func NewTranslator(ctx context.Context, region string) (*Translator, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Translator{client: translate.NewFromConfig(cfg)}, nil
}

// TranslationResult mirrors the provider's response shape, which the portal
// front-end consumes directly.
type TranslationResult struct {
	TranslatedText     string `json:"TranslatedText"`
	SourceLanguageCode string `json:"SourceLanguageCode"`
	TargetLanguageCode string `json:"TargetLanguageCode"`
}

func (t *Translator) Translate(ctx context.Context, text string) (TranslationResult, error) {
	out, err := t.client.TranslateText(ctx, &translate.TranslateTextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String("en"),
		TargetLanguageCode: aws.String("hi"),
	})
	if err != nil {
		return TranslationResult{}, fmt.Errorf("translate text: %w", err)
	}
	return TranslationResult{
		TranslatedText:     aws.ToString(out.TranslatedText),
		SourceLanguageCode: aws.ToString(out.SourceLanguageCode),
		TargetLanguageCode: aws.ToString(out.TargetLanguageCode),
	}, nil
}
