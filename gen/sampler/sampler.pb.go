// Regenerate the Go bindings with:
//   protoc --go_out=. --go_opt=module=github.com/perfspace/dse-explorer \
//          --go-grpc_out=. --go-grpc_opt=module=github.com/perfspace/dse-explorer \
//          proto/sampler.proto

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: sampler.proto

package sampler

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CreateStudyRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// "minimize" | "maximize", one per objective, in objective order.
	Directions []string `protobuf:"bytes,1,rep,name=directions,proto3" json:"directions,omitempty"`
	// "tpe" | "nsga3" | sampler-specific names understood by the service.
	Sampler        string `protobuf:"bytes,2,opt,name=sampler,proto3" json:"sampler,omitempty"`
	NStartupTrials int32  `protobuf:"varint,3,opt,name=n_startup_trials,json=nStartupTrials,proto3" json:"n_startup_trials,omitempty"`
	PopulationSize int32  `protobuf:"varint,4,opt,name=population_size,json=populationSize,proto3" json:"population_size,omitempty"`
	RandomSeed     int64  `protobuf:"varint,5,opt,name=random_seed,json=randomSeed,proto3" json:"random_seed,omitempty"`
	HasSeed        bool   `protobuf:"varint,6,opt,name=has_seed,json=hasSeed,proto3" json:"has_seed,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateStudyRequest) Reset() {
	*x = CreateStudyRequest{}
	mi := &file_sampler_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateStudyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateStudyRequest) ProtoMessage() {}

func (x *CreateStudyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateStudyRequest.ProtoReflect.Descriptor instead.
func (*CreateStudyRequest) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{0}
}

func (x *CreateStudyRequest) GetDirections() []string {
	if x != nil {
		return x.Directions
	}
	return nil
}

func (x *CreateStudyRequest) GetSampler() string {
	if x != nil {
		return x.Sampler
	}
	return ""
}

func (x *CreateStudyRequest) GetNStartupTrials() int32 {
	if x != nil {
		return x.NStartupTrials
	}
	return 0
}

func (x *CreateStudyRequest) GetPopulationSize() int32 {
	if x != nil {
		return x.PopulationSize
	}
	return 0
}

func (x *CreateStudyRequest) GetRandomSeed() int64 {
	if x != nil {
		return x.RandomSeed
	}
	return 0
}

func (x *CreateStudyRequest) GetHasSeed() bool {
	if x != nil {
		return x.HasSeed
	}
	return false
}

type CreateStudyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StudyId       string                 `protobuf:"bytes,1,opt,name=study_id,json=studyId,proto3" json:"study_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateStudyResponse) Reset() {
	*x = CreateStudyResponse{}
	mi := &file_sampler_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateStudyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateStudyResponse) ProtoMessage() {}

func (x *CreateStudyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateStudyResponse.ProtoReflect.Descriptor instead.
func (*CreateStudyResponse) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{1}
}

func (x *CreateStudyResponse) GetStudyId() string {
	if x != nil {
		return x.StudyId
	}
	return ""
}

type StartTrialRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StudyId       string                 `protobuf:"bytes,1,opt,name=study_id,json=studyId,proto3" json:"study_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartTrialRequest) Reset() {
	*x = StartTrialRequest{}
	mi := &file_sampler_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartTrialRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartTrialRequest) ProtoMessage() {}

func (x *StartTrialRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartTrialRequest.ProtoReflect.Descriptor instead.
func (*StartTrialRequest) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{2}
}

func (x *StartTrialRequest) GetStudyId() string {
	if x != nil {
		return x.StudyId
	}
	return ""
}

type StartTrialResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TrialId       int64                  `protobuf:"varint,1,opt,name=trial_id,json=trialId,proto3" json:"trial_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartTrialResponse) Reset() {
	*x = StartTrialResponse{}
	mi := &file_sampler_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartTrialResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartTrialResponse) ProtoMessage() {}

func (x *StartTrialResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartTrialResponse.ProtoReflect.Descriptor instead.
func (*StartTrialResponse) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{3}
}

func (x *StartTrialResponse) GetTrialId() int64 {
	if x != nil {
		return x.TrialId
	}
	return 0
}

type CategoricalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StudyId       string                 `protobuf:"bytes,1,opt,name=study_id,json=studyId,proto3" json:"study_id,omitempty"`
	TrialId       int64                  `protobuf:"varint,2,opt,name=trial_id,json=trialId,proto3" json:"trial_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Choices       []string               `protobuf:"bytes,4,rep,name=choices,proto3" json:"choices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategoricalRequest) Reset() {
	*x = CategoricalRequest{}
	mi := &file_sampler_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoricalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoricalRequest) ProtoMessage() {}

func (x *CategoricalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoricalRequest.ProtoReflect.Descriptor instead.
func (*CategoricalRequest) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{4}
}

func (x *CategoricalRequest) GetStudyId() string {
	if x != nil {
		return x.StudyId
	}
	return ""
}

func (x *CategoricalRequest) GetTrialId() int64 {
	if x != nil {
		return x.TrialId
	}
	return 0
}

func (x *CategoricalRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CategoricalRequest) GetChoices() []string {
	if x != nil {
		return x.Choices
	}
	return nil
}

type CategoricalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         string                 `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategoricalResponse) Reset() {
	*x = CategoricalResponse{}
	mi := &file_sampler_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoricalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoricalResponse) ProtoMessage() {}

func (x *CategoricalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoricalResponse.ProtoReflect.Descriptor instead.
func (*CategoricalResponse) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{5}
}

func (x *CategoricalResponse) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type IntRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StudyId       string                 `protobuf:"bytes,1,opt,name=study_id,json=studyId,proto3" json:"study_id,omitempty"`
	TrialId       int64                  `protobuf:"varint,2,opt,name=trial_id,json=trialId,proto3" json:"trial_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Low           int64                  `protobuf:"varint,4,opt,name=low,proto3" json:"low,omitempty"`
	High          int64                  `protobuf:"varint,5,opt,name=high,proto3" json:"high,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IntRequest) Reset() {
	*x = IntRequest{}
	mi := &file_sampler_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IntRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IntRequest) ProtoMessage() {}

func (x *IntRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IntRequest.ProtoReflect.Descriptor instead.
func (*IntRequest) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{6}
}

func (x *IntRequest) GetStudyId() string {
	if x != nil {
		return x.StudyId
	}
	return ""
}

func (x *IntRequest) GetTrialId() int64 {
	if x != nil {
		return x.TrialId
	}
	return 0
}

func (x *IntRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *IntRequest) GetLow() int64 {
	if x != nil {
		return x.Low
	}
	return 0
}

func (x *IntRequest) GetHigh() int64 {
	if x != nil {
		return x.High
	}
	return 0
}

type IntResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         int64                  `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IntResponse) Reset() {
	*x = IntResponse{}
	mi := &file_sampler_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IntResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IntResponse) ProtoMessage() {}

func (x *IntResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IntResponse.ProtoReflect.Descriptor instead.
func (*IntResponse) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{7}
}

func (x *IntResponse) GetValue() int64 {
	if x != nil {
		return x.Value
	}
	return 0
}

type FloatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StudyId       string                 `protobuf:"bytes,1,opt,name=study_id,json=studyId,proto3" json:"study_id,omitempty"`
	TrialId       int64                  `protobuf:"varint,2,opt,name=trial_id,json=trialId,proto3" json:"trial_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Low           float64                `protobuf:"fixed64,4,opt,name=low,proto3" json:"low,omitempty"`
	High          float64                `protobuf:"fixed64,5,opt,name=high,proto3" json:"high,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FloatRequest) Reset() {
	*x = FloatRequest{}
	mi := &file_sampler_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FloatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FloatRequest) ProtoMessage() {}

func (x *FloatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FloatRequest.ProtoReflect.Descriptor instead.
func (*FloatRequest) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{8}
}

func (x *FloatRequest) GetStudyId() string {
	if x != nil {
		return x.StudyId
	}
	return ""
}

func (x *FloatRequest) GetTrialId() int64 {
	if x != nil {
		return x.TrialId
	}
	return 0
}

func (x *FloatRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *FloatRequest) GetLow() float64 {
	if x != nil {
		return x.Low
	}
	return 0
}

func (x *FloatRequest) GetHigh() float64 {
	if x != nil {
		return x.High
	}
	return 0
}

type FloatResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         float64                `protobuf:"fixed64,1,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FloatResponse) Reset() {
	*x = FloatResponse{}
	mi := &file_sampler_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FloatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FloatResponse) ProtoMessage() {}

func (x *FloatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FloatResponse.ProtoReflect.Descriptor instead.
func (*FloatResponse) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{9}
}

func (x *FloatResponse) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

type TellRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	StudyId string                 `protobuf:"bytes,1,opt,name=study_id,json=studyId,proto3" json:"study_id,omitempty"`
	TrialId int64                  `protobuf:"varint,2,opt,name=trial_id,json=trialId,proto3" json:"trial_id,omitempty"`
	// "complete" | "pruned" | "failed"
	State string `protobuf:"bytes,3,opt,name=state,proto3" json:"state,omitempty"`
	// Objective values, present only for complete trials.
	Values        []float64 `protobuf:"fixed64,4,rep,packed,name=values,proto3" json:"values,omitempty"`
	Reason        string    `protobuf:"bytes,5,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TellRequest) Reset() {
	*x = TellRequest{}
	mi := &file_sampler_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TellRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TellRequest) ProtoMessage() {}

func (x *TellRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TellRequest.ProtoReflect.Descriptor instead.
func (*TellRequest) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{10}
}

func (x *TellRequest) GetStudyId() string {
	if x != nil {
		return x.StudyId
	}
	return ""
}

func (x *TellRequest) GetTrialId() int64 {
	if x != nil {
		return x.TrialId
	}
	return 0
}

func (x *TellRequest) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *TellRequest) GetValues() []float64 {
	if x != nil {
		return x.Values
	}
	return nil
}

func (x *TellRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type TellResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TellResponse) Reset() {
	*x = TellResponse{}
	mi := &file_sampler_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TellResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TellResponse) ProtoMessage() {}

func (x *TellResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TellResponse.ProtoReflect.Descriptor instead.
func (*TellResponse) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{11}
}

type BestTrialsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StudyId       string                 `protobuf:"bytes,1,opt,name=study_id,json=studyId,proto3" json:"study_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BestTrialsRequest) Reset() {
	*x = BestTrialsRequest{}
	mi := &file_sampler_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BestTrialsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BestTrialsRequest) ProtoMessage() {}

func (x *BestTrialsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BestTrialsRequest.ProtoReflect.Descriptor instead.
func (*BestTrialsRequest) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{12}
}

func (x *BestTrialsRequest) GetStudyId() string {
	if x != nil {
		return x.StudyId
	}
	return ""
}

type BestTrialsResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Trial IDs forming the service's own Pareto front. May be empty when the
	// service does not track dominance; caller then recomputes locally.
	TrialIds      []int64 `protobuf:"varint,1,rep,packed,name=trial_ids,json=trialIds,proto3" json:"trial_ids,omitempty"`
	Supported     bool    `protobuf:"varint,2,opt,name=supported,proto3" json:"supported,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BestTrialsResponse) Reset() {
	*x = BestTrialsResponse{}
	mi := &file_sampler_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BestTrialsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BestTrialsResponse) ProtoMessage() {}

func (x *BestTrialsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BestTrialsResponse.ProtoReflect.Descriptor instead.
func (*BestTrialsResponse) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{13}
}

func (x *BestTrialsResponse) GetTrialIds() []int64 {
	if x != nil {
		return x.TrialIds
	}
	return nil
}

func (x *BestTrialsResponse) GetSupported() bool {
	if x != nil {
		return x.Supported
	}
	return false
}

var File_sampler_proto protoreflect.FileDescriptor

var file_sampler_proto_rawDesc = string([]byte{
	0x0a, 0x0d, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12,
	0x07, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x22, 0xdd, 0x01, 0x0a, 0x12, 0x43, 0x72, 0x65,
	0x61, 0x74, 0x65, 0x53, 0x74, 0x75, 0x64, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x1e, 0x0a, 0x0a, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x18, 0x01, 0x20,
	0x03, 0x28, 0x09, 0x52, 0x0a, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x12,
	0x18, 0x0a, 0x07, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x12, 0x28, 0x0a, 0x10, 0x6e, 0x5f, 0x73,
	0x74, 0x61, 0x72, 0x74, 0x75, 0x70, 0x5f, 0x74, 0x72, 0x69, 0x61, 0x6c, 0x73, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x0e, 0x6e, 0x53, 0x74, 0x61, 0x72, 0x74, 0x75, 0x70, 0x54, 0x72, 0x69,
	0x61, 0x6c, 0x73, 0x12, 0x27, 0x0a, 0x0f, 0x70, 0x6f, 0x70, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f,
	0x6e, 0x5f, 0x73, 0x69, 0x7a, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0e, 0x70, 0x6f,
	0x70, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x53, 0x69, 0x7a, 0x65, 0x12, 0x1f, 0x0a, 0x0b,
	0x72, 0x61, 0x6e, 0x64, 0x6f, 0x6d, 0x5f, 0x73, 0x65, 0x65, 0x64, 0x18, 0x05, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x0a, 0x72, 0x61, 0x6e, 0x64, 0x6f, 0x6d, 0x53, 0x65, 0x65, 0x64, 0x12, 0x19, 0x0a,
	0x08, 0x68, 0x61, 0x73, 0x5f, 0x73, 0x65, 0x65, 0x64, 0x18, 0x06, 0x20, 0x01, 0x28, 0x08, 0x52,
	0x07, 0x68, 0x61, 0x73, 0x53, 0x65, 0x65, 0x64, 0x22, 0x30, 0x0a, 0x13, 0x43, 0x72, 0x65, 0x61,
	0x74, 0x65, 0x53, 0x74, 0x75, 0x64, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x19, 0x0a, 0x08, 0x73, 0x74, 0x75, 0x64, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x07, 0x73, 0x74, 0x75, 0x64, 0x79, 0x49, 0x64, 0x22, 0x2e, 0x0a, 0x11, 0x53, 0x74,
	0x61, 0x72, 0x74, 0x54, 0x72, 0x69, 0x61, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x19, 0x0a, 0x08, 0x73, 0x74, 0x75, 0x64, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x07, 0x73, 0x74, 0x75, 0x64, 0x79, 0x49, 0x64, 0x22, 0x2f, 0x0a, 0x12, 0x53, 0x74,
	0x61, 0x72, 0x74, 0x54, 0x72, 0x69, 0x61, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x19, 0x0a, 0x08, 0x74, 0x72, 0x69, 0x61, 0x6c, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x07, 0x74, 0x72, 0x69, 0x61, 0x6c, 0x49, 0x64, 0x22, 0x78, 0x0a, 0x12, 0x43,
	0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x69, 0x63, 0x61, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x19, 0x0a, 0x08, 0x73, 0x74, 0x75, 0x64, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x07, 0x73, 0x74, 0x75, 0x64, 0x79, 0x49, 0x64, 0x12, 0x19, 0x0a, 0x08,
	0x74, 0x72, 0x69, 0x61, 0x6c, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07,
	0x74, 0x72, 0x69, 0x61, 0x6c, 0x49, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x63,
	0x68, 0x6f, 0x69, 0x63, 0x65, 0x73, 0x18, 0x04, 0x20, 0x03, 0x28, 0x09, 0x52, 0x07, 0x63, 0x68,
	0x6f, 0x69, 0x63, 0x65, 0x73, 0x22, 0x2b, 0x0a, 0x13, 0x43, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72,
	0x69, 0x63, 0x61, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05,
	0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x76, 0x61, 0x6c,
	0x75, 0x65, 0x22, 0x7c, 0x0a, 0x0a, 0x49, 0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x19, 0x0a, 0x08, 0x73, 0x74, 0x75, 0x64, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x07, 0x73, 0x74, 0x75, 0x64, 0x79, 0x49, 0x64, 0x12, 0x19, 0x0a, 0x08, 0x74,
	0x72, 0x69, 0x61, 0x6c, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x74,
	0x72, 0x69, 0x61, 0x6c, 0x49, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x10, 0x0a, 0x03, 0x6c, 0x6f,
	0x77, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x03, 0x6c, 0x6f, 0x77, 0x12, 0x12, 0x0a, 0x04,
	0x68, 0x69, 0x67, 0x68, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x68, 0x69, 0x67, 0x68,
	0x22, 0x23, 0x0a, 0x0b, 0x49, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x05,
	0x76, 0x61, 0x6c, 0x75, 0x65, 0x22, 0x7e, 0x0a, 0x0c, 0x46, 0x6c, 0x6f, 0x61, 0x74, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x73, 0x74, 0x75, 0x64, 0x79, 0x5f, 0x69,
	0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x73, 0x74, 0x75, 0x64, 0x79, 0x49, 0x64,
	0x12, 0x19, 0x0a, 0x08, 0x74, 0x72, 0x69, 0x61, 0x6c, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x07, 0x74, 0x72, 0x69, 0x61, 0x6c, 0x49, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x6e,
	0x61, 0x6d, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12,
	0x10, 0x0a, 0x03, 0x6c, 0x6f, 0x77, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x03, 0x6c, 0x6f,
	0x77, 0x12, 0x12, 0x0a, 0x04, 0x68, 0x69, 0x67, 0x68, 0x18, 0x05, 0x20, 0x01, 0x28, 0x01, 0x52,
	0x04, 0x68, 0x69, 0x67, 0x68, 0x22, 0x25, 0x0a, 0x0d, 0x46, 0x6c, 0x6f, 0x61, 0x74, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x01, 0x52, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x22, 0x89, 0x01, 0x0a,
	0x0b, 0x54, 0x65, 0x6c, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08,
	0x73, 0x74, 0x75, 0x64, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07,
	0x73, 0x74, 0x75, 0x64, 0x79, 0x49, 0x64, 0x12, 0x19, 0x0a, 0x08, 0x74, 0x72, 0x69, 0x61, 0x6c,
	0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x74, 0x72, 0x69, 0x61, 0x6c,
	0x49, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x74, 0x61, 0x74, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x05, 0x73, 0x74, 0x61, 0x74, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x76, 0x61, 0x6c, 0x75,
	0x65, 0x73, 0x18, 0x04, 0x20, 0x03, 0x28, 0x01, 0x52, 0x06, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x73,
	0x12, 0x16, 0x0a, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x22, 0x0e, 0x0a, 0x0c, 0x54, 0x65, 0x6c, 0x6c,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x2e, 0x0a, 0x11, 0x42, 0x65, 0x73, 0x74,
	0x54, 0x72, 0x69, 0x61, 0x6c, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a,
	0x08, 0x73, 0x74, 0x75, 0x64, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x07, 0x73, 0x74, 0x75, 0x64, 0x79, 0x49, 0x64, 0x22, 0x4f, 0x0a, 0x12, 0x42, 0x65, 0x73, 0x74,
	0x54, 0x72, 0x69, 0x61, 0x6c, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1b,
	0x0a, 0x09, 0x74, 0x72, 0x69, 0x61, 0x6c, 0x5f, 0x69, 0x64, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28,
	0x03, 0x52, 0x08, 0x74, 0x72, 0x69, 0x61, 0x6c, 0x49, 0x64, 0x73, 0x12, 0x1c, 0x0a, 0x09, 0x73,
	0x75, 0x70, 0x70, 0x6f, 0x72, 0x74, 0x65, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x08, 0x52, 0x09,
	0x73, 0x75, 0x70, 0x70, 0x6f, 0x72, 0x74, 0x65, 0x64, 0x32, 0xda, 0x03, 0x0a, 0x0e, 0x53, 0x61,
	0x6d, 0x70, 0x6c, 0x65, 0x72, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x48, 0x0a, 0x0b,
	0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x53, 0x74, 0x75, 0x64, 0x79, 0x12, 0x1b, 0x2e, 0x73, 0x61,
	0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x53, 0x74, 0x75, 0x64,
	0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e, 0x73, 0x61, 0x6d, 0x70, 0x6c,
	0x65, 0x72, 0x2e, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x53, 0x74, 0x75, 0x64, 0x79, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x45, 0x0a, 0x0a, 0x53, 0x74, 0x61, 0x72, 0x74, 0x54,
	0x72, 0x69, 0x61, 0x6c, 0x12, 0x1a, 0x2e, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x53,
	0x74, 0x61, 0x72, 0x74, 0x54, 0x72, 0x69, 0x61, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x1b, 0x2e, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x53, 0x74, 0x61, 0x72, 0x74,
	0x54, 0x72, 0x69, 0x61, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4b, 0x0a,
	0x0e, 0x41, 0x73, 0x6b, 0x43, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x69, 0x63, 0x61, 0x6c, 0x12,
	0x1b, 0x2e, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x43, 0x61, 0x74, 0x65, 0x67, 0x6f,
	0x72, 0x69, 0x63, 0x61, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e, 0x73,
	0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x43, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x69, 0x63,
	0x61, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x33, 0x0a, 0x06, 0x41, 0x73,
	0x6b, 0x49, 0x6e, 0x74, 0x12, 0x13, 0x2e, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x49,
	0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x14, 0x2e, 0x73, 0x61, 0x6d, 0x70,
	0x6c, 0x65, 0x72, 0x2e, 0x49, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x39, 0x0a, 0x08, 0x41, 0x73, 0x6b, 0x46, 0x6c, 0x6f, 0x61, 0x74, 0x12, 0x15, 0x2e, 0x73, 0x61,
	0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x46, 0x6c, 0x6f, 0x61, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x16, 0x2e, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x46, 0x6c, 0x6f,
	0x61, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x33, 0x0a, 0x04, 0x54, 0x65,
	0x6c, 0x6c, 0x12, 0x14, 0x2e, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x54, 0x65, 0x6c,
	0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x15, 0x2e, 0x73, 0x61, 0x6d, 0x70, 0x6c,
	0x65, 0x72, 0x2e, 0x54, 0x65, 0x6c, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x45, 0x0a, 0x0a, 0x42, 0x65, 0x73, 0x74, 0x54, 0x72, 0x69, 0x61, 0x6c, 0x73, 0x12, 0x1a, 0x2e,
	0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x42, 0x65, 0x73, 0x74, 0x54, 0x72, 0x69, 0x61,
	0x6c, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1b, 0x2e, 0x73, 0x61, 0x6d, 0x70,
	0x6c, 0x65, 0x72, 0x2e, 0x42, 0x65, 0x73, 0x74, 0x54, 0x72, 0x69, 0x61, 0x6c, 0x73, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x2f, 0x5a, 0x2d, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62,
	0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x70, 0x65, 0x72, 0x66, 0x73, 0x70, 0x61, 0x63, 0x65, 0x2f, 0x64,
	0x73, 0x65, 0x2d, 0x65, 0x78, 0x70, 0x6c, 0x6f, 0x72, 0x65, 0x72, 0x2f, 0x67, 0x65, 0x6e, 0x2f,
	0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_sampler_proto_rawDescOnce sync.Once
	file_sampler_proto_rawDescData []byte
)

func file_sampler_proto_rawDescGZIP() []byte {
	file_sampler_proto_rawDescOnce.Do(func() {
		file_sampler_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_sampler_proto_rawDesc), len(file_sampler_proto_rawDesc)))
	})
	return file_sampler_proto_rawDescData
}

var file_sampler_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_sampler_proto_goTypes = []any{
	(*CreateStudyRequest)(nil),  // 0: sampler.CreateStudyRequest
	(*CreateStudyResponse)(nil), // 1: sampler.CreateStudyResponse
	(*StartTrialRequest)(nil),   // 2: sampler.StartTrialRequest
	(*StartTrialResponse)(nil),  // 3: sampler.StartTrialResponse
	(*CategoricalRequest)(nil),  // 4: sampler.CategoricalRequest
	(*CategoricalResponse)(nil), // 5: sampler.CategoricalResponse
	(*IntRequest)(nil),          // 6: sampler.IntRequest
	(*IntResponse)(nil),         // 7: sampler.IntResponse
	(*FloatRequest)(nil),        // 8: sampler.FloatRequest
	(*FloatResponse)(nil),       // 9: sampler.FloatResponse
	(*TellRequest)(nil),         // 10: sampler.TellRequest
	(*TellResponse)(nil),        // 11: sampler.TellResponse
	(*BestTrialsRequest)(nil),   // 12: sampler.BestTrialsRequest
	(*BestTrialsResponse)(nil),  // 13: sampler.BestTrialsResponse
}
var file_sampler_proto_depIdxs = []int32{
	0,  // 0: sampler.SamplerService.CreateStudy:input_type -> sampler.CreateStudyRequest
	2,  // 1: sampler.SamplerService.StartTrial:input_type -> sampler.StartTrialRequest
	4,  // 2: sampler.SamplerService.AskCategorical:input_type -> sampler.CategoricalRequest
	6,  // 3: sampler.SamplerService.AskInt:input_type -> sampler.IntRequest
	8,  // 4: sampler.SamplerService.AskFloat:input_type -> sampler.FloatRequest
	10, // 5: sampler.SamplerService.Tell:input_type -> sampler.TellRequest
	12, // 6: sampler.SamplerService.BestTrials:input_type -> sampler.BestTrialsRequest
	1,  // 7: sampler.SamplerService.CreateStudy:output_type -> sampler.CreateStudyResponse
	3,  // 8: sampler.SamplerService.StartTrial:output_type -> sampler.StartTrialResponse
	5,  // 9: sampler.SamplerService.AskCategorical:output_type -> sampler.CategoricalResponse
	7,  // 10: sampler.SamplerService.AskInt:output_type -> sampler.IntResponse
	9,  // 11: sampler.SamplerService.AskFloat:output_type -> sampler.FloatResponse
	11, // 12: sampler.SamplerService.Tell:output_type -> sampler.TellResponse
	13, // 13: sampler.SamplerService.BestTrials:output_type -> sampler.BestTrialsResponse
	7,  // [7:14] is the sub-list for method output_type
	0,  // [0:7] is the sub-list for method input_type
	0,  // [0:0] is the sub-list for extension type_name
	0,  // [0:0] is the sub-list for extension extendee
	0,  // [0:0] is the sub-list for field type_name
}

func init() { file_sampler_proto_init() }
func file_sampler_proto_init() {
	if File_sampler_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_sampler_proto_rawDesc), len(file_sampler_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_sampler_proto_goTypes,
		DependencyIndexes: file_sampler_proto_depIdxs,
		MessageInfos:      file_sampler_proto_msgTypes,
	}.Build()
	File_sampler_proto = out.File
	file_sampler_proto_goTypes = nil
	file_sampler_proto_depIdxs = nil
}
