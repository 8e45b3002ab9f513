// Code generated by ent, DO NOT EDIT.

package call

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldID, id))
}

// CallerID applies equality check predicate on the "caller_id" field. It's identical to CallerIDEQ.
func CallerID(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCallerID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldAgentID, v))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldChannel, v))
}

// AudioKey applies equality check predicate on the "audio_key" field. It's identical to AudioKeyEQ.
func AudioKey(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldAudioKey, v))
}

// FileFormat applies equality check predicate on the "file_format" field. It's identical to FileFormatEQ.
func FileFormat(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldFileFormat, v))
}

// FileSizeBytes applies equality check predicate on the "file_size_bytes" field. It's identical to FileSizeBytesEQ.
func FileSizeBytes(v int64) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldFileSizeBytes, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v float64) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldDuration, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldStartTime, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCorrelationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCreatedAt, v))
}

// CallerIDEQ applies the EQ predicate on the "caller_id" field.
func CallerIDEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCallerID, v))
}

// CallerIDNEQ applies the NEQ predicate on the "caller_id" field.
func CallerIDNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldCallerID, v))
}

// CallerIDIn applies the In predicate on the "caller_id" field.
func CallerIDIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldCallerID, vs...))
}

// CallerIDNotIn applies the NotIn predicate on the "caller_id" field.
func CallerIDNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldCallerID, vs...))
}

// CallerIDGT applies the GT predicate on the "caller_id" field.
func CallerIDGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldCallerID, v))
}

// CallerIDGTE applies the GTE predicate on the "caller_id" field.
func CallerIDGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldCallerID, v))
}

// CallerIDLT applies the LT predicate on the "caller_id" field.
func CallerIDLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldCallerID, v))
}

// CallerIDLTE applies the LTE predicate on the "caller_id" field.
func CallerIDLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldCallerID, v))
}

// CallerIDContains applies the Contains predicate on the "caller_id" field.
func CallerIDContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldCallerID, v))
}

// CallerIDHasPrefix applies the HasPrefix predicate on the "caller_id" field.
func CallerIDHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldCallerID, v))
}

// CallerIDHasSuffix applies the HasSuffix predicate on the "caller_id" field.
func CallerIDHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldCallerID, v))
}

// CallerIDEqualFold applies the EqualFold predicate on the "caller_id" field.
func CallerIDEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldCallerID, v))
}

// CallerIDContainsFold applies the ContainsFold predicate on the "caller_id" field.
func CallerIDContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldCallerID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldAgentID, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldChannel, v))
}

// AudioKeyEQ applies the EQ predicate on the "audio_key" field.
func AudioKeyEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldAudioKey, v))
}

// AudioKeyNEQ applies the NEQ predicate on the "audio_key" field.
func AudioKeyNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldAudioKey, v))
}

// AudioKeyIn applies the In predicate on the "audio_key" field.
func AudioKeyIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldAudioKey, vs...))
}

// AudioKeyNotIn applies the NotIn predicate on the "audio_key" field.
func AudioKeyNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldAudioKey, vs...))
}

// AudioKeyGT applies the GT predicate on the "audio_key" field.
func AudioKeyGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldAudioKey, v))
}

// AudioKeyGTE applies the GTE predicate on the "audio_key" field.
func AudioKeyGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldAudioKey, v))
}

// AudioKeyLT applies the LT predicate on the "audio_key" field.
func AudioKeyLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldAudioKey, v))
}

// AudioKeyLTE applies the LTE predicate on the "audio_key" field.
func AudioKeyLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldAudioKey, v))
}

// AudioKeyContains applies the Contains predicate on the "audio_key" field.
func AudioKeyContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldAudioKey, v))
}

// AudioKeyHasPrefix applies the HasPrefix predicate on the "audio_key" field.
func AudioKeyHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldAudioKey, v))
}

// AudioKeyHasSuffix applies the HasSuffix predicate on the "audio_key" field.
func AudioKeyHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldAudioKey, v))
}

// AudioKeyEqualFold applies the EqualFold predicate on the "audio_key" field.
func AudioKeyEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldAudioKey, v))
}

// AudioKeyContainsFold applies the ContainsFold predicate on the "audio_key" field.
func AudioKeyContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldAudioKey, v))
}

// FileFormatEQ applies the EQ predicate on the "file_format" field.
func FileFormatEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldFileFormat, v))
}

// FileFormatNEQ applies the NEQ predicate on the "file_format" field.
func FileFormatNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldFileFormat, v))
}

// FileFormatIn applies the In predicate on the "file_format" field.
func FileFormatIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldFileFormat, vs...))
}

// FileFormatNotIn applies the NotIn predicate on the "file_format" field.
func FileFormatNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldFileFormat, vs...))
}

// FileFormatGT applies the GT predicate on the "file_format" field.
func FileFormatGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldFileFormat, v))
}

// FileFormatGTE applies the GTE predicate on the "file_format" field.
func FileFormatGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldFileFormat, v))
}

// FileFormatLT applies the LT predicate on the "file_format" field.
func FileFormatLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldFileFormat, v))
}

// FileFormatLTE applies the LTE predicate on the "file_format" field.
func FileFormatLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldFileFormat, v))
}

// FileFormatContains applies the Contains predicate on the "file_format" field.
func FileFormatContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldFileFormat, v))
}

// FileFormatHasPrefix applies the HasPrefix predicate on the "file_format" field.
func FileFormatHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldFileFormat, v))
}

// FileFormatHasSuffix applies the HasSuffix predicate on the "file_format" field.
func FileFormatHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldFileFormat, v))
}

// FileFormatEqualFold applies the EqualFold predicate on the "file_format" field.
func FileFormatEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldFileFormat, v))
}

// FileFormatContainsFold applies the ContainsFold predicate on the "file_format" field.
func FileFormatContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldFileFormat, v))
}

// FileSizeBytesEQ applies the EQ predicate on the "file_size_bytes" field.
func FileSizeBytesEQ(v int64) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesNEQ applies the NEQ predicate on the "file_size_bytes" field.
func FileSizeBytesNEQ(v int64) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesIn applies the In predicate on the "file_size_bytes" field.
func FileSizeBytesIn(vs ...int64) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesNotIn applies the NotIn predicate on the "file_size_bytes" field.
func FileSizeBytesNotIn(vs ...int64) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesGT applies the GT predicate on the "file_size_bytes" field.
func FileSizeBytesGT(v int64) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldFileSizeBytes, v))
}

// FileSizeBytesGTE applies the GTE predicate on the "file_size_bytes" field.
func FileSizeBytesGTE(v int64) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldFileSizeBytes, v))
}

// FileSizeBytesLT applies the LT predicate on the "file_size_bytes" field.
func FileSizeBytesLT(v int64) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldFileSizeBytes, v))
}

// FileSizeBytesLTE applies the LTE predicate on the "file_size_bytes" field.
func FileSizeBytesLTE(v int64) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldFileSizeBytes, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v float64) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v float64) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...float64) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...float64) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v float64) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v float64) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v float64) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v float64) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldDuration, v))
}

// DurationIsNil applies the IsNil predicate on the "duration" field.
func DurationIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldDuration))
}

// DurationNotNil applies the NotNil predicate on the "duration" field.
func DurationNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldDuration))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldStartTime, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldStatus, vs...))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldCorrelationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Call) predicate.Call {
	return predicate.Call(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Call) predicate.Call {
	return predicate.Call(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Call) predicate.Call {
	return predicate.Call(sql.NotPredicates(p))
}
