package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"
)

type fakeTranslateAPI struct {
	input *translate.TranslateTextInput
	err   error
}

func (f *fakeTranslateAPI) TranslateText(_ context.Context, params *translate.TranslateTextInput, _ ...func(*translate.Options)) (*translate.TranslateTextOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &translate.TranslateTextOutput{
		TranslatedText:     aws.String("दान करें"),
		SourceLanguageCode: params.SourceLanguageCode,
		TargetLanguageCode: params.TargetLanguageCode,
	}, nil
}

func TestTranslateUsesFixedLanguagePair(t *testing.T) {
	api := &fakeTranslateAPI{}
	tr := &Translator{client: api}

	result, err := tr.Translate(context.Background(), "Donate now")
	if err != nil {
		t.Fatal(err)
	}
	if aws.ToString(api.input.Text) != "Donate now" {
		t.Fatalf("text not passed through: %v", api.input.Text)
	}
	if aws.ToString(api.input.SourceLanguageCode) != "en" || aws.ToString(api.input.TargetLanguageCode) != "hi" {
		t.Fatalf("language pair must be fixed en->hi: %+v", api.input)
	}
	if result.TranslatedText != "दान करें" || result.TargetLanguageCode != "hi" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestTranslatePropagatesServiceFailure(t *testing.T) {
	tr := &Translator{client: &fakeTranslateAPI{err: errors.New("throttled")}}
	if _, err := tr.Translate(context.Background(), "Donate now"); err == nil {
		t.Fatal("want error on service failure")
	}
}
