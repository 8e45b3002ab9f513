// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: callsight.proto

package proto

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

type TranscribeRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	CallId string                 `protobuf:"bytes,1,opt,name=call_id,json=callId,proto3" json:"call_id,omitempty"`
	// Object storage key of the audio blob.
	AudioKey      string `protobuf:"bytes,2,opt,name=audio_key,json=audioKey,proto3" json:"audio_key,omitempty"`
	FileFormat    string `protobuf:"bytes,3,opt,name=file_format,json=fileFormat,proto3" json:"file_format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TranscribeRequest) Reset() {
	*x = TranscribeRequest{}
	mi := &file_callsight_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TranscribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TranscribeRequest) ProtoMessage() {}

func (x *TranscribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_callsight_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TranscribeRequest.ProtoReflect.Descriptor instead.
func (*TranscribeRequest) Descriptor() ([]byte, []int) {
	return file_callsight_proto_rawDescGZIP(), []int{0}
}

func (x *TranscribeRequest) GetCallId() string {
	if x != nil {
		return x.CallId
	}
	return ""
}

func (x *TranscribeRequest) GetAudioKey() string {
	if x != nil {
		return x.AudioKey
	}
	return ""
}

func (x *TranscribeRequest) GetFileFormat() string {
	if x != nil {
		return x.FileFormat
	}
	return ""
}

type TranscriptSegment struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// agent | customer | unknown
	Speaker string `protobuf:"bytes,1,opt,name=speaker,proto3" json:"speaker,omitempty"`
	// Seconds from call start.
	StartTime     float64  `protobuf:"fixed64,2,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime       float64  `protobuf:"fixed64,3,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	Text          string   `protobuf:"bytes,4,opt,name=text,proto3" json:"text,omitempty"`
	Confidence    *float64 `protobuf:"fixed64,5,opt,name=confidence,proto3,oneof" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TranscriptSegment) Reset() {
	*x = TranscriptSegment{}
	mi := &file_callsight_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TranscriptSegment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TranscriptSegment) ProtoMessage() {}

func (x *TranscriptSegment) ProtoReflect() protoreflect.Message {
	mi := &file_callsight_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TranscriptSegment.ProtoReflect.Descriptor instead.
func (*TranscriptSegment) Descriptor() ([]byte, []int) {
	return file_callsight_proto_rawDescGZIP(), []int{1}
}

func (x *TranscriptSegment) GetSpeaker() string {
	if x != nil {
		return x.Speaker
	}
	return ""
}

func (x *TranscriptSegment) GetStartTime() float64 {
	if x != nil {
		return x.StartTime
	}
	return 0
}

func (x *TranscriptSegment) GetEndTime() float64 {
	if x != nil {
		return x.EndTime
	}
	return 0
}

func (x *TranscriptSegment) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *TranscriptSegment) GetConfidence() float64 {
	if x != nil && x.Confidence != nil {
		return *x.Confidence
	}
	return 0
}

type TranscribeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FullText      string                 `protobuf:"bytes,1,opt,name=full_text,json=fullText,proto3" json:"full_text,omitempty"`
	Language      string                 `protobuf:"bytes,2,opt,name=language,proto3" json:"language,omitempty"`
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Segments      []*TranscriptSegment   `protobuf:"bytes,4,rep,name=segments,proto3" json:"segments,omitempty"`
	ModelVersion  string                 `protobuf:"bytes,5,opt,name=model_version,json=modelVersion,proto3" json:"model_version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TranscribeResponse) Reset() {
	*x = TranscribeResponse{}
	mi := &file_callsight_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TranscribeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TranscribeResponse) ProtoMessage() {}

func (x *TranscribeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_callsight_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TranscribeResponse.ProtoReflect.Descriptor instead.
func (*TranscribeResponse) Descriptor() ([]byte, []int) {
	return file_callsight_proto_rawDescGZIP(), []int{2}
}

func (x *TranscribeResponse) GetFullText() string {
	if x != nil {
		return x.FullText
	}
	return ""
}

func (x *TranscribeResponse) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *TranscribeResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *TranscribeResponse) GetSegments() []*TranscriptSegment {
	if x != nil {
		return x.Segments
	}
	return nil
}

func (x *TranscribeResponse) GetModelVersion() string {
	if x != nil {
		return x.ModelVersion
	}
	return ""
}

type AnalyzeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CallId        string                 `protobuf:"bytes,1,opt,name=call_id,json=callId,proto3" json:"call_id,omitempty"`
	FullText      string                 `protobuf:"bytes,2,opt,name=full_text,json=fullText,proto3" json:"full_text,omitempty"`
	Segments      []*TranscriptSegment   `protobuf:"bytes,3,rep,name=segments,proto3" json:"segments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeRequest) Reset() {
	*x = AnalyzeRequest{}
	mi := &file_callsight_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeRequest) ProtoMessage() {}

func (x *AnalyzeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_callsight_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeRequest) Descriptor() ([]byte, []int) {
	return file_callsight_proto_rawDescGZIP(), []int{3}
}

func (x *AnalyzeRequest) GetCallId() string {
	if x != nil {
		return x.CallId
	}
	return ""
}

func (x *AnalyzeRequest) GetFullText() string {
	if x != nil {
		return x.FullText
	}
	return ""
}

func (x *AnalyzeRequest) GetSegments() []*TranscriptSegment {
	if x != nil {
		return x.Segments
	}
	return nil
}

type SegmentSentiment struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	StartTime float64                `protobuf:"fixed64,1,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime   float64                `protobuf:"fixed64,2,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	// positive | neutral | negative
	Sentiment string `protobuf:"bytes,3,opt,name=sentiment,proto3" json:"sentiment,omitempty"`
	// -1.0 .. 1.0
	Score         float64            `protobuf:"fixed64,4,opt,name=score,proto3" json:"score,omitempty"`
	Speaker       string             `protobuf:"bytes,5,opt,name=speaker,proto3" json:"speaker,omitempty"`
	Emotions      map[string]float64 `protobuf:"bytes,6,rep,name=emotions,proto3" json:"emotions,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SegmentSentiment) Reset() {
	*x = SegmentSentiment{}
	mi := &file_callsight_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SegmentSentiment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SegmentSentiment) ProtoMessage() {}

func (x *SegmentSentiment) ProtoReflect() protoreflect.Message {
	mi := &file_callsight_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SegmentSentiment.ProtoReflect.Descriptor instead.
func (*SegmentSentiment) Descriptor() ([]byte, []int) {
	return file_callsight_proto_rawDescGZIP(), []int{4}
}

func (x *SegmentSentiment) GetStartTime() float64 {
	if x != nil {
		return x.StartTime
	}
	return 0
}

func (x *SegmentSentiment) GetEndTime() float64 {
	if x != nil {
		return x.EndTime
	}
	return 0
}

func (x *SegmentSentiment) GetSentiment() string {
	if x != nil {
		return x.Sentiment
	}
	return ""
}

func (x *SegmentSentiment) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *SegmentSentiment) GetSpeaker() string {
	if x != nil {
		return x.Speaker
	}
	return ""
}

func (x *SegmentSentiment) GetEmotions() map[string]float64 {
	if x != nil {
		return x.Emotions
	}
	return nil
}

type Escalation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MaxDrop       float64                `protobuf:"fixed64,1,opt,name=max_drop,json=maxDrop,proto3" json:"max_drop,omitempty"`
	FromScore     float64                `protobuf:"fixed64,2,opt,name=from_score,json=fromScore,proto3" json:"from_score,omitempty"`
	ToScore       float64                `protobuf:"fixed64,3,opt,name=to_score,json=toScore,proto3" json:"to_score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Escalation) Reset() {
	*x = Escalation{}
	mi := &file_callsight_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Escalation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Escalation) ProtoMessage() {}

func (x *Escalation) ProtoReflect() protoreflect.Message {
	mi := &file_callsight_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Escalation.ProtoReflect.Descriptor instead.
func (*Escalation) Descriptor() ([]byte, []int) {
	return file_callsight_proto_rawDescGZIP(), []int{5}
}

func (x *Escalation) GetMaxDrop() float64 {
	if x != nil {
		return x.MaxDrop
	}
	return 0
}

func (x *Escalation) GetFromScore() float64 {
	if x != nil {
		return x.FromScore
	}
	return 0
}

func (x *Escalation) GetToScore() float64 {
	if x != nil {
		return x.ToScore
	}
	return 0
}

type SentimentResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	OverallSentiment   string                 `protobuf:"bytes,1,opt,name=overall_sentiment,json=overallSentiment,proto3" json:"overall_sentiment,omitempty"`
	SentimentScore     float64                `protobuf:"fixed64,2,opt,name=sentiment_score,json=sentimentScore,proto3" json:"sentiment_score,omitempty"`
	EscalationDetected bool                   `protobuf:"varint,3,opt,name=escalation_detected,json=escalationDetected,proto3" json:"escalation_detected,omitempty"`
	Escalation         *Escalation            `protobuf:"bytes,4,opt,name=escalation,proto3,oneof" json:"escalation,omitempty"`
	SegmentSentiments  []*SegmentSentiment    `protobuf:"bytes,5,rep,name=segment_sentiments,json=segmentSentiments,proto3" json:"segment_sentiments,omitempty"`
	ModelVersion       string                 `protobuf:"bytes,6,opt,name=model_version,json=modelVersion,proto3" json:"model_version,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *SentimentResponse) Reset() {
	*x = SentimentResponse{}
	mi := &file_callsight_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SentimentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SentimentResponse) ProtoMessage() {}

func (x *SentimentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_callsight_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SentimentResponse.ProtoReflect.Descriptor instead.
func (*SentimentResponse) Descriptor() ([]byte, []int) {
	return file_callsight_proto_rawDescGZIP(), []int{6}
}

func (x *SentimentResponse) GetOverallSentiment() string {
	if x != nil {
		return x.OverallSentiment
	}
	return ""
}

func (x *SentimentResponse) GetSentimentScore() float64 {
	if x != nil {
		return x.SentimentScore
	}
	return 0
}

func (x *SentimentResponse) GetEscalationDetected() bool {
	if x != nil {
		return x.EscalationDetected
	}
	return false
}

func (x *SentimentResponse) GetEscalation() *Escalation {
	if x != nil {
		return x.Escalation
	}
	return nil
}

func (x *SentimentResponse) GetSegmentSentiments() []*SegmentSentiment {
	if x != nil {
		return x.SegmentSentiments
	}
	return nil
}

func (x *SentimentResponse) GetModelVersion() string {
	if x != nil {
		return x.ModelVersion
	}
	return ""
}

type InsightsResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// complaint | inquiry | compliment | request | other
	PrimaryIntent string   `protobuf:"bytes,1,opt,name=primary_intent,json=primaryIntent,proto3" json:"primary_intent,omitempty"`
	Topics        []string `protobuf:"bytes,2,rep,name=topics,proto3" json:"topics,omitempty"`
	Keywords      []string `protobuf:"bytes,3,rep,name=keywords,proto3" json:"keywords,omitempty"`
	// low | medium | high
	CustomerSatisfaction string `protobuf:"bytes,4,opt,name=customer_satisfaction,json=customerSatisfaction,proto3" json:"customer_satisfaction,omitempty"`
	// 0.0 .. 1.0
	PredictedChurnRisk float64  `protobuf:"fixed64,5,opt,name=predicted_churn_risk,json=predictedChurnRisk,proto3" json:"predicted_churn_risk,omitempty"`
	ActionableItems    []string `protobuf:"bytes,6,rep,name=actionable_items,json=actionableItems,proto3" json:"actionable_items,omitempty"`
	Summary            string   `protobuf:"bytes,7,opt,name=summary,proto3" json:"summary,omitempty"`
	ModelVersion       string   `protobuf:"bytes,8,opt,name=model_version,json=modelVersion,proto3" json:"model_version,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *InsightsResponse) Reset() {
	*x = InsightsResponse{}
	mi := &file_callsight_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InsightsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InsightsResponse) ProtoMessage() {}

func (x *InsightsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_callsight_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InsightsResponse.ProtoReflect.Descriptor instead.
func (*InsightsResponse) Descriptor() ([]byte, []int) {
	return file_callsight_proto_rawDescGZIP(), []int{7}
}

func (x *InsightsResponse) GetPrimaryIntent() string {
	if x != nil {
		return x.PrimaryIntent
	}
	return ""
}

func (x *InsightsResponse) GetTopics() []string {
	if x != nil {
		return x.Topics
	}
	return nil
}

func (x *InsightsResponse) GetKeywords() []string {
	if x != nil {
		return x.Keywords
	}
	return nil
}

func (x *InsightsResponse) GetCustomerSatisfaction() string {
	if x != nil {
		return x.CustomerSatisfaction
	}
	return ""
}

func (x *InsightsResponse) GetPredictedChurnRisk() float64 {
	if x != nil {
		return x.PredictedChurnRisk
	}
	return 0
}

func (x *InsightsResponse) GetActionableItems() []string {
	if x != nil {
		return x.ActionableItems
	}
	return nil
}

func (x *InsightsResponse) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *InsightsResponse) GetModelVersion() string {
	if x != nil {
		return x.ModelVersion
	}
	return ""
}

var File_callsight_proto protoreflect.FileDescriptor

const file_callsight_proto_rawDesc = "" +
	"\n" +
	"\x0fcallsight.proto\x12\fcallsight.v1\"j\n" +
	"\x11TranscribeRequest\x12\x17\n" +
	"\acall_id\x18\x01 \x01(\tR\x06callId\x12\x1b\n" +
	"\taudio_key\x18\x02 \x01(\tR\baudioKey\x12\x1f\n" +
	"\vfile_format\x18\x03 \x01(\tR\n" +
	"fileFormat\"\xaf\x01\n" +
	"\x11TranscriptSegment\x12\x18\n" +
	"\aspeaker\x18\x01 \x01(\tR\aspeaker\x12\x1d\n" +
	"\n" +
	"start_time\x18\x02 \x01(\x01R\tstartTime\x12\x19\n" +
	"\bend_time\x18\x03 \x01(\x01R\aendTime\x12\x12\n" +
	"\x04text\x18\x04 \x01(\tR\x04text\x12#\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x01H\x00R\n" +
	"confidence\x88\x01\x01B\r\n" +
	"\v_confidence\"\xcf\x01\n" +
	"\x12TranscribeResponse\x12\x1b\n" +
	"\tfull_text\x18\x01 \x01(\tR\bfullText\x12\x1a\n" +
	"\blanguage\x18\x02 \x01(\tR\blanguage\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x12;\n" +
	"\bsegments\x18\x04 \x03(\v2\x1f.callsight.v1.TranscriptSegmentR\bsegments\x12#\n" +
	"\rmodel_version\x18\x05 \x01(\tR\fmodelVersion\"\x83\x01\n" +
	"\x0eAnalyzeRequest\x12\x17\n" +
	"\acall_id\x18\x01 \x01(\tR\x06callId\x12\x1b\n" +
	"\tfull_text\x18\x02 \x01(\tR\bfullText\x12;\n" +
	"\bsegments\x18\x03 \x03(\v2\x1f.callsight.v1.TranscriptSegmentR\bsegments\"\xa1\x02\n" +
	"\x10SegmentSentiment\x12\x1d\n" +
	"\n" +
	"start_time\x18\x01 \x01(\x01R\tstartTime\x12\x19\n" +
	"\bend_time\x18\x02 \x01(\x01R\aendTime\x12\x1c\n" +
	"\tsentiment\x18\x03 \x01(\tR\tsentiment\x12\x14\n" +
	"\x05score\x18\x04 \x01(\x01R\x05score\x12\x18\n" +
	"\aspeaker\x18\x05 \x01(\tR\aspeaker\x12H\n" +
	"\bemotions\x18\x06 \x03(\v2,.callsight.v1.SegmentSentiment.EmotionsEntryR\bemotions\x1a;\n" +
	"\rEmotionsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01\"a\n" +
	"\n" +
	"Escalation\x12\x19\n" +
	"\bmax_drop\x18\x01 \x01(\x01R\amaxDrop\x12\x1d\n" +
	"\n" +
	"from_score\x18\x02 \x01(\x01R\tfromScore\x12\x19\n" +
	"\bto_score\x18\x03 \x01(\x01R\atoScore\"\xdc\x02\n" +
	"\x11SentimentResponse\x12+\n" +
	"\x11overall_sentiment\x18\x01 \x01(\tR\x10overallSentiment\x12'\n" +
	"\x0fsentiment_score\x18\x02 \x01(\x01R\x0esentimentScore\x12/\n" +
	"\x13escalation_detected\x18\x03 \x01(\bR\x12escalationDetected\x12=\n" +
	"\n" +
	"escalation\x18\x04 \x01(\v2\x18.callsight.v1.EscalationH\x00R\n" +
	"escalation\x88\x01\x01\x12M\n" +
	"\x12segment_sentiments\x18\x05 \x03(\v2\x1e.callsight.v1.SegmentSentimentR\x11segmentSentiments\x12#\n" +
	"\rmodel_version\x18\x06 \x01(\tR\fmodelVersionB\r\n" +
	"\v_escalation\"\xbe\x02\n" +
	"\x10InsightsResponse\x12%\n" +
	"\x0eprimary_intent\x18\x01 \x01(\tR\rprimaryIntent\x12\x16\n" +
	"\x06topics\x18\x02 \x03(\tR\x06topics\x12\x1a\n" +
	"\bkeywords\x18\x03 \x03(\tR\bkeywords\x123\n" +
	"\x15customer_satisfaction\x18\x04 \x01(\tR\x14customerSatisfaction\x120\n" +
	"\x14predicted_churn_risk\x18\x05 \x01(\x01R\x12predictedChurnRisk\x12)\n" +
	"\x10actionable_items\x18\x06 \x03(\tR\x0factionableItems\x12\x18\n" +
	"\asummary\x18\a \x01(\tR\asummary\x12#\n" +
	"\rmodel_version\x18\b \x01(\tR\fmodelVersion2`\n" +
	"\rSpeechService\x12O\n" +
	"\n" +
	"Transcribe\x12\x1f.callsight.v1.TranscribeRequest\x1a .callsight.v1.TranscribeResponse2\xb5\x01\n" +
	"\x0fAnalysisService\x12Q\n" +
	"\x10AnalyzeSentiment\x12\x1c.callsight.v1.AnalyzeRequest\x1a\x1f.callsight.v1.SentimentResponse\x12O\n" +
	"\x0fExtractInsights\x12\x1c.callsight.v1.AnalyzeRequest\x1a\x1e.callsight.v1.InsightsResponseB&Z$github.com/callsight/callsight/protob\x06proto3"

var (
	file_callsight_proto_rawDescOnce sync.Once
	file_callsight_proto_rawDescData []byte
)

func file_callsight_proto_rawDescGZIP() []byte {
	file_callsight_proto_rawDescOnce.Do(func() {
		file_callsight_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_callsight_proto_rawDesc), len(file_callsight_proto_rawDesc)))
	})
	return file_callsight_proto_rawDescData
}

var file_callsight_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_callsight_proto_goTypes = []any{
	(*TranscribeRequest)(nil),  // 0: callsight.v1.TranscribeRequest
	(*TranscriptSegment)(nil),  // 1: callsight.v1.TranscriptSegment
	(*TranscribeResponse)(nil), // 2: callsight.v1.TranscribeResponse
	(*AnalyzeRequest)(nil),     // 3: callsight.v1.AnalyzeRequest
	(*SegmentSentiment)(nil),   // 4: callsight.v1.SegmentSentiment
	(*Escalation)(nil),         // 5: callsight.v1.Escalation
	(*SentimentResponse)(nil),  // 6: callsight.v1.SentimentResponse
	(*InsightsResponse)(nil),   // 7: callsight.v1.InsightsResponse
	nil,                        // 8: callsight.v1.SegmentSentiment.EmotionsEntry
}
var file_callsight_proto_depIdxs = []int32{
	1, // 0: callsight.v1.TranscribeResponse.segments:type_name -> callsight.v1.TranscriptSegment
	1, // 1: callsight.v1.AnalyzeRequest.segments:type_name -> callsight.v1.TranscriptSegment
	8, // 2: callsight.v1.SegmentSentiment.emotions:type_name -> callsight.v1.SegmentSentiment.EmotionsEntry
	5, // 3: callsight.v1.SentimentResponse.escalation:type_name -> callsight.v1.Escalation
	4, // 4: callsight.v1.SentimentResponse.segment_sentiments:type_name -> callsight.v1.SegmentSentiment
	0, // 5: callsight.v1.SpeechService.Transcribe:input_type -> callsight.v1.TranscribeRequest
	3, // 6: callsight.v1.AnalysisService.AnalyzeSentiment:input_type -> callsight.v1.AnalyzeRequest
	3, // 7: callsight.v1.AnalysisService.ExtractInsights:input_type -> callsight.v1.AnalyzeRequest
	2, // 8: callsight.v1.SpeechService.Transcribe:output_type -> callsight.v1.TranscribeResponse
	6, // 9: callsight.v1.AnalysisService.AnalyzeSentiment:output_type -> callsight.v1.SentimentResponse
	7, // 10: callsight.v1.AnalysisService.ExtractInsights:output_type -> callsight.v1.InsightsResponse
	8, // [8:11] is the sub-list for method output_type
	5, // [5:8] is the sub-list for method input_type
	5, // [5:5] is the sub-list for extension type_name
	5, // [5:5] is the sub-list for extension extendee
	0, // [0:5] is the sub-list for field type_name
}

func init() { file_callsight_proto_init() }
func file_callsight_proto_init() {
	if File_callsight_proto != nil {
		return
	}
	file_callsight_proto_msgTypes[1].OneofWrappers = []any{}
	file_callsight_proto_msgTypes[6].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_callsight_proto_rawDesc), len(file_callsight_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_callsight_proto_goTypes,
		DependencyIndexes: file_callsight_proto_depIdxs,
		MessageInfos:      file_callsight_proto_msgTypes,
	}.Build()
	File_callsight_proto = out.File
	file_callsight_proto_goTypes = nil
	file_callsight_proto_depIdxs = nil
}
