package sampler

// #region imports
import (
	"context"
	"fmt"

	pb "github.com/perfspace/dse-explorer/gen/sampler"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/perfspace/dse-explorer/internal/config"
)

// #endregion

// #region client-struct
// Client wraps the gRPC connection to the Python sampler service.
type Client struct {
	conn    *grpc.ClientConn
	client  pb.SamplerServiceClient
	studyID string
}

// #endregion client-struct

// #region constructor
// NewClient connects to the sampler gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewSamplerServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.SamplerServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region create-study
// CreateStudy creates the remote study with the given objective directions
// and search settings, and remembers its ID for all later calls.
func (c *Client) CreateStudy(ctx context.Context, objectives []config.Objective, search config.SearchSpec) error {
	directions := make([]string, len(objectives))
	for i, o := range objectives {
		if o.Goal == "max" {
			directions[i] = "maximize"
		} else {
			directions[i] = "minimize"
		}
	}
	req := &pb.CreateStudyRequest{
		Directions:     directions,
		Sampler:        search.Sampler,
		NStartupTrials: int32(search.NStartupTrials),
		PopulationSize: int32(search.PopulationSize),
	}
	if search.RandomSeed != nil {
		req.RandomSeed = *search.RandomSeed
		req.HasSeed = true
	}
	resp, err := c.client.CreateStudy(ctx, req)
	if err != nil {
		return fmt.Errorf("create study rpc: %w", err)
	}
	c.studyID = resp.StudyId
	return nil
}

// #endregion create-study

// #region start-trial
// StartTrial registers a new trial with the remote study.
func (c *Client) StartTrial(ctx context.Context) (int64, error) {
	resp, err := c.client.StartTrial(ctx, &pb.StartTrialRequest{StudyId: c.studyID})
	if err != nil {
		return 0, fmt.Errorf("start trial rpc: %w", err)
	}
	return resp.TrialId, nil
}

// #endregion start-trial

// #region asks
// AskCategorical requests one categorical choice from the sampler.
func (c *Client) AskCategorical(ctx context.Context, trialID int64, name string, choices []string) (string, error) {
	resp, err := c.client.AskCategorical(ctx, &pb.CategoricalRequest{
		StudyId: c.studyID,
		TrialId: trialID,
		Name:    name,
		Choices: choices,
	})
	if err != nil {
		return "", fmt.Errorf("ask categorical %q rpc: %w", name, err)
	}
	return resp.Value, nil
}

// AskInt requests one integer from an inclusive range.
func (c *Client) AskInt(ctx context.Context, trialID int64, name string, low, high int) (int, error) {
	resp, err := c.client.AskInt(ctx, &pb.IntRequest{
		StudyId: c.studyID,
		TrialId: trialID,
		Name:    name,
		Low:     int64(low),
		High:    int64(high),
	})
	if err != nil {
		return 0, fmt.Errorf("ask int %q rpc: %w", name, err)
	}
	return int(resp.Value), nil
}

// AskFloat requests one float from an inclusive range.
func (c *Client) AskFloat(ctx context.Context, trialID int64, name string, low, high float64) (float64, error) {
	resp, err := c.client.AskFloat(ctx, &pb.FloatRequest{
		StudyId: c.studyID,
		TrialId: trialID,
		Name:    name,
		Low:     low,
		High:    high,
	})
	if err != nil {
		return 0, fmt.Errorf("ask float %q rpc: %w", name, err)
	}
	return resp.Value, nil
}

// #endregion asks

// #region tell
// Tell reports a finalized trial outcome so the optimizer updates its model.
func (c *Client) Tell(ctx context.Context, trialID int64, state string, values []float64, reason string) error {
	_, err := c.client.Tell(ctx, &pb.TellRequest{
		StudyId: c.studyID,
		TrialId: trialID,
		State:   state,
		Values:  values,
		Reason:  reason,
	})
	if err != nil {
		return fmt.Errorf("tell rpc: %w", err)
	}
	return nil
}

// #endregion tell

// #region best-trials
// BestTrials fetches the service's own Pareto front, when supported.
func (c *Client) BestTrials(ctx context.Context) ([]int64, bool, error) {
	resp, err := c.client.BestTrials(ctx, &pb.BestTrialsRequest{StudyId: c.studyID})
	if err != nil {
		return nil, false, fmt.Errorf("best trials rpc: %w", err)
	}
	return resp.TrialIds, resp.Supported, nil
}

// #endregion best-trials
