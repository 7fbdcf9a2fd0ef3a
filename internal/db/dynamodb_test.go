package db

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/socialpulse/darijapulse/internal/models"
)

func TestPostToDynamoDBItemLiftsNeedsReview(t *testing.T) {
	tests := []struct {
		name string
		post models.Post
		want bool
	}{
		{
			name: "flagged post",
			post: models.Post{
				ID:        "a",
				RawText:   "chouf el film",
				Sentiment: &models.SentimentAnalysis{Label: "neutral", Confidence: 0.5, NeedsReview: true},
			},
			want: true,
		},
		{
			name: "confident post",
			post: models.Post{
				ID:        "b",
				RawText:   "behi barcha",
				Sentiment: &models.SentimentAnalysis{Label: "positive", Confidence: 0.9},
			},
			want: false,
		},
		{
			name: "unlabeled post",
			post: models.Post{ID: "c", RawText: "jaw"},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := PostToDynamoDBItem(tt.post)
			if err != nil {
				t.Fatal(err)
			}

			// The review scan filters on this top-level attribute.
			attr, ok := item["needs_review"].(*types.AttributeValueMemberBOOL)
			if !ok {
				t.Fatalf("needs_review missing or wrong type: %T", item["needs_review"])
			}
			if attr.Value != tt.want {
				t.Errorf("needs_review = %v, want %v", attr.Value, tt.want)
			}

			if _, ok := item["stored_at"].(*types.AttributeValueMemberN); !ok {
				t.Error("stored_at not set")
			}
		})
	}
}

func TestPostToDynamoDBItemRoundTrip(t *testing.T) {
	post := models.Post{
		ID:        "a",
		RawText:   "chouf el film",
		CleanText: "chouf el film",
		Source:    "social",
		Sentiment: &models.SentimentAnalysis{Label: "neutral", Confidence: 0.5, NeedsReview: true},
	}

	item, err := PostToDynamoDBItem(post)
	if err != nil {
		t.Fatal(err)
	}

	var got models.Post
	if err := attributevalue.UnmarshalMap(item, &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != post.ID || got.RawText != post.RawText || got.CleanText != post.CleanText {
		t.Errorf("round trip mangled post: %+v", got)
	}
	if got.Sentiment == nil || !got.Sentiment.NeedsReview || got.Sentiment.Label != "neutral" {
		t.Errorf("round trip mangled sentiment: %+v", got.Sentiment)
	}
}
