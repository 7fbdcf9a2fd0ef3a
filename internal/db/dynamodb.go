package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/socialpulse/darijapulse/internal/clients"
	"github.com/socialpulse/darijapulse/internal/models"
)

const LABELED_POSTS_TABLE_NAME = "LabeledPosts"

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// StoreLabeledPosts writes labeled posts in chunks of 25, the BatchWriteItem
// ceiling. Unprocessed items are retried with exponential backoff.
func StoreLabeledPosts(ctx context.Context, posts []models.Post) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	const maxBatchSize = 25
	for i := 0; i < len(posts); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:

			end := i + maxBatchSize
			if end > len(posts) {
				end = len(posts)
			}

			writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
			for _, post := range posts[i:end] {
				item, err := PostToDynamoDBItem(post)
				if err != nil {
					slog.Error("[DynamoDB] Failed to marshal post, skipping",
						slog.String("post_id", post.ID),
						slog.String("error", err.Error()))
					continue
				}
				writeRequests = append(writeRequests, types.WriteRequest{
					PutRequest: &types.PutRequest{
						Item: item,
					},
				})
			}
			if len(writeRequests) == 0 {
				continue
			}

			out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					LABELED_POSTS_TABLE_NAME: writeRequests,
				},
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to batch write labeled posts: %w", err)
			}

			retryCount := 0
			backoff := 500 * time.Millisecond
			for len(out.UnprocessedItems) > 0 && retryCount < 3 {
				time.Sleep(backoff)
				backoff *= 2

				slog.Warn("[DynamoDB] Retrying unprocessed posts...",
					slog.Int("attempt", retryCount+1),
					slog.Int("remaining", len(out.UnprocessedItems[LABELED_POSTS_TABLE_NAME])))

				out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
					RequestItems: out.UnprocessedItems,
				})
				if err != nil {
					return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
				}

				retryCount++
			}

			if len(out.UnprocessedItems) > 0 {
				slog.Error("[DynamoDB] Some posts were not written even after retries",
					slog.Int("remaining", len(out.UnprocessedItems[LABELED_POSTS_TABLE_NAME])))
			}
		}
	}
	slog.Info("[DynamoDB] Successfully stored labeled posts",
		slog.Int("count", len(posts)))
	return nil
}

// PostToDynamoDBItem flattens a labeled post into an item. needs_review is
// lifted to the top level so the review scan can filter on it.
func PostToDynamoDBItem(post models.Post) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(post)
	if err != nil {
		return nil, err
	}

	item["stored_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Unix())}

	needsReview := post.Sentiment != nil && post.Sentiment.NeedsReview
	item["needs_review"] = &types.AttributeValueMemberBOOL{Value: needsReview}

	return item, nil
}

// GetPostsForReview scans for stored posts whose confidence fell below the
// review cutoff at labeling time.
func GetPostsForReview(ctx context.Context) ([]models.Post, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	var posts []models.Post
	input := &dynamodb.ScanInput{
		TableName:        aws.String(LABELED_POSTS_TABLE_NAME),
		FilterExpression: aws.String("needs_review = :review"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":review": &types.AttributeValueMemberBOOL{Value: true},
		},
	}

	paginator := dynamodb.NewScanPaginator(dbClient, input)

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for review posts failed: %w", err)
		}
		var page []models.Post
		err = attributevalue.UnmarshalListOfMaps(out.Items, &page)
		if err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal current page", slog.String("error", err.Error()))
			return nil, err
		}
		posts = append(posts, page...)
	}
	slog.Info("[DynamoDB] Successfully retrieved posts for review", slog.Int("count", len(posts)))
	return posts, nil
}
