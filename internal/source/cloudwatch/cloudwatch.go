// Package cloudwatch provides the AWS CloudWatch Logs implementation
// of the source.Source interface.
package cloudwatch

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"

	"github.com/vivainio/loggoblin/internal/config"
	"github.com/vivainio/loggoblin/internal/source"
)

// Client wraps the CloudWatch Logs API as a source.Source.
type Client struct {
	api *cloudwatchlogs.Client
}

// New loads the default AWS configuration, optionally for a named
// shared-config profile, and returns a ready client.
func New(ctx context.Context, profile string) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &Client{api: cloudwatchlogs.NewFromConfig(cfg)}, nil
}

// ListGroups returns every log group name, following pagination.
func (c *Client) ListGroups(ctx context.Context) ([]string, error) {
	var groups []string

	pager := cloudwatchlogs.NewDescribeLogGroupsPaginator(c.api, &cloudwatchlogs.DescribeLogGroupsInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describing log groups: %w", err)
		}
		for _, g := range page.LogGroups {
			groups = append(groups, aws.ToString(g.LogGroupName))
		}
	}

	return groups, nil
}

// ListStreams returns a group's streams ordered by last event time,
// newest first.
func (c *Client) ListStreams(ctx context.Context, group string) ([]source.Stream, error) {
	out, err := c.api.DescribeLogStreams(ctx, &cloudwatchlogs.DescribeLogStreamsInput{
		LogGroupName: aws.String(group),
		OrderBy:      types.OrderByLastEventTime,
		Descending:   aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("describing streams of %s: %w", group, err)
	}

	streams := make([]source.Stream, 0, len(out.LogStreams))
	for _, s := range out.LogStreams {
		streams = append(streams, source.Stream{
			Name:           aws.ToString(s.LogStreamName),
			CreationMillis: aws.ToInt64(s.CreationTime),
		})
	}

	return streams, nil
}

// FetchEvents returns one batch of raw events for a stream. Timestamps
// stay in the store's epoch-millisecond unit.
func (c *Client) FetchEvents(ctx context.Context, group, stream string) ([]config.RawEvent, error) {
	out, err := c.api.GetLogEvents(ctx, &cloudwatchlogs.GetLogEventsInput{
		LogGroupName:  aws.String(group),
		LogStreamName: aws.String(stream),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching events of %s/%s: %w", group, stream, err)
	}

	events := make([]config.RawEvent, 0, len(out.Events))
	for _, ev := range out.Events {
		events = append(events, config.RawEvent{
			Message:   aws.ToString(ev.Message),
			Timestamp: aws.ToInt64(ev.Timestamp),
		})
	}

	return events, nil
}
