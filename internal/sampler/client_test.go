package sampler

import (
	"context"
	"errors"
	"testing"

	pb "github.com/perfspace/dse-explorer/gen/sampler"
	"google.golang.org/grpc"

	"github.com/perfspace/dse-explorer/internal/config"
)

// #region mock
type mockSamplerService struct {
	pb.SamplerServiceClient

	createReq  *pb.CreateStudyRequest
	createResp *pb.CreateStudyResponse
	createErr  error

	startResp *pb.StartTrialResponse
	startErr  error

	catReq  *pb.CategoricalRequest
	catResp *pb.CategoricalResponse
	catErr  error

	intResp *pb.IntResponse
	intErr  error

	floatResp *pb.FloatResponse
	floatErr  error

	tellReq  *pb.TellRequest
	tellResp *pb.TellResponse
	tellErr  error

	bestResp *pb.BestTrialsResponse
	bestErr  error
}

func (m *mockSamplerService) CreateStudy(_ context.Context, req *pb.CreateStudyRequest, _ ...grpc.CallOption) (*pb.CreateStudyResponse, error) {
	m.createReq = req
	return m.createResp, m.createErr
}

func (m *mockSamplerService) StartTrial(_ context.Context, _ *pb.StartTrialRequest, _ ...grpc.CallOption) (*pb.StartTrialResponse, error) {
	return m.startResp, m.startErr
}

func (m *mockSamplerService) AskCategorical(_ context.Context, req *pb.CategoricalRequest, _ ...grpc.CallOption) (*pb.CategoricalResponse, error) {
	m.catReq = req
	return m.catResp, m.catErr
}

func (m *mockSamplerService) AskInt(_ context.Context, _ *pb.IntRequest, _ ...grpc.CallOption) (*pb.IntResponse, error) {
	return m.intResp, m.intErr
}

func (m *mockSamplerService) AskFloat(_ context.Context, _ *pb.FloatRequest, _ ...grpc.CallOption) (*pb.FloatResponse, error) {
	return m.floatResp, m.floatErr
}

func (m *mockSamplerService) Tell(_ context.Context, req *pb.TellRequest, _ ...grpc.CallOption) (*pb.TellResponse, error) {
	m.tellReq = req
	return m.tellResp, m.tellErr
}

func (m *mockSamplerService) BestTrials(_ context.Context, _ *pb.BestTrialsRequest, _ ...grpc.CallOption) (*pb.BestTrialsResponse, error) {
	return m.bestResp, m.bestErr
}

// #endregion mock

// #region constructor-tests
func TestNewClientInvalidAddr(t *testing.T) {
	client, err := NewClient("localhost:0")
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	defer client.Close()
}

func TestNewClientWithService(t *testing.T) {
	c := NewClientWithService(&mockSamplerService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
}

// #endregion constructor-tests

// #region create-study-tests
func TestCreateStudy_Success(t *testing.T) {
	seed := int64(42)
	mock := &mockSamplerService{
		createResp: &pb.CreateStudyResponse{StudyId: "study-1"},
	}
	c := &Client{client: mock}

	objectives := []config.Objective{
		{Metric: "CPI", Goal: "min"},
		{Metric: "DP [MFLOP/s]", Goal: "max"},
	}
	search := config.SearchSpec{
		Sampler:        "nsga3",
		NStartupTrials: 10,
		PopulationSize: 50,
		RandomSeed:     &seed,
	}
	if err := c.CreateStudy(context.Background(), objectives, search); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.studyID != "study-1" {
		t.Errorf("expected study id 'study-1', got %q", c.studyID)
	}

	req := mock.createReq
	if len(req.Directions) != 2 || req.Directions[0] != "minimize" || req.Directions[1] != "maximize" {
		t.Errorf("unexpected directions: %v", req.Directions)
	}
	if req.Sampler != "nsga3" {
		t.Errorf("expected sampler nsga3, got %q", req.Sampler)
	}
	if !req.HasSeed || req.RandomSeed != 42 {
		t.Errorf("expected seed 42 carried, got has=%v seed=%d", req.HasSeed, req.RandomSeed)
	}
}

func TestCreateStudy_NoSeed(t *testing.T) {
	mock := &mockSamplerService{
		createResp: &pb.CreateStudyResponse{StudyId: "study-2"},
	}
	c := &Client{client: mock}

	err := c.CreateStudy(context.Background(), []config.Objective{{Metric: "CPI", Goal: "min"}}, config.SearchSpec{Sampler: "tpe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.createReq.HasSeed {
		t.Error("has_seed must be false when no seed is configured")
	}
}

func TestCreateStudy_Error(t *testing.T) {
	mock := &mockSamplerService{
		createErr: errors.New("rpc failed"),
	}
	c := &Client{client: mock}

	err := c.CreateStudy(context.Background(), nil, config.SearchSpec{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.createErr) {
		t.Errorf("expected wrapped rpc error, got: %v", err)
	}
}

// #endregion create-study-tests

// #region trial-tests
func TestStartTrial_Success(t *testing.T) {
	mock := &mockSamplerService{
		startResp: &pb.StartTrialResponse{TrialId: 7},
	}
	c := &Client{client: mock}

	id, err := c.StartTrial(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected trial id 7, got %d", id)
	}
}

func TestAskCategorical_Success(t *testing.T) {
	mock := &mockSamplerService{
		catResp: &pb.CategoricalResponse{Value: "-O3"},
	}
	c := &Client{client: mock, studyID: "s"}

	v, err := c.AskCategorical(context.Background(), 3, "flag_variant", []string{"-O2", "-O3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "-O3" {
		t.Errorf("expected '-O3', got %q", v)
	}
	if mock.catReq.TrialId != 3 || mock.catReq.Name != "flag_variant" {
		t.Errorf("request not carried through: %v", mock.catReq)
	}
}

func TestAskInt_Success(t *testing.T) {
	mock := &mockSamplerService{
		intResp: &pb.IntResponse{Value: 4},
	}
	c := &Client{client: mock}

	v, err := c.AskInt(context.Background(), 1, "n_active_params", 2, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 4 {
		t.Errorf("expected 4, got %d", v)
	}
}

func TestAskFloat_Error(t *testing.T) {
	mock := &mockSamplerService{
		floatErr: errors.New("ask failed"),
	}
	c := &Client{client: mock}

	_, err := c.AskFloat(context.Background(), 1, "sel_x", 0, 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.floatErr) {
		t.Errorf("expected wrapped ask error, got: %v", err)
	}
}

// #endregion trial-tests

// #region tell-tests
func TestTell_Success(t *testing.T) {
	mock := &mockSamplerService{
		tellResp: &pb.TellResponse{},
	}
	c := &Client{client: mock, studyID: "s"}

	err := c.Tell(context.Background(), 5, StatePruned, nil, "build failed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.tellReq.State != "pruned" || mock.tellReq.Reason != "build failed" {
		t.Errorf("outcome not carried through: %v", mock.tellReq)
	}
}

func TestTell_Error(t *testing.T) {
	mock := &mockSamplerService{
		tellErr: errors.New("tell failed"),
	}
	c := &Client{client: mock}

	err := c.Tell(context.Background(), 5, StateComplete, []float64{1.2}, "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.tellErr) {
		t.Errorf("expected wrapped tell error, got: %v", err)
	}
}

// #endregion tell-tests

// #region best-trials-tests
func TestBestTrials_Success(t *testing.T) {
	mock := &mockSamplerService{
		bestResp: &pb.BestTrialsResponse{TrialIds: []int64{1, 4}, Supported: true},
	}
	c := &Client{client: mock}

	ids, supported, err := c.BestTrials(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !supported {
		t.Error("expected supported=true")
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 4 {
		t.Errorf("unexpected ids: %v", ids)
	}
}

// #endregion best-trials-tests

// #region adapter-tests
func TestForTrialBindsTrialID(t *testing.T) {
	mock := &mockSamplerService{
		catResp: &pb.CategoricalResponse{Value: "a"},
	}
	c := &Client{client: mock}

	a := ForTrial(c, 9)
	if _, err := a.AskCategorical(context.Background(), "p", []string{"a", "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.catReq.TrialId != 9 {
		t.Errorf("expected trial id 9 bound, got %d", mock.catReq.TrialId)
	}
}

// #endregion adapter-tests
