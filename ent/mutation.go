// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callsight/callsight/ent/agentperformance"
	"github.com/callsight/callsight/ent/auditresult"
	"github.com/callsight/callsight/ent/call"
	"github.com/callsight/callsight/ent/compliancerule"
	"github.com/callsight/callsight/ent/complianceviolation"
	"github.com/callsight/callsight/ent/notification"
	"github.com/callsight/callsight/ent/predicate"
	"github.com/callsight/callsight/ent/sentimentanalysis"
	"github.com/callsight/callsight/ent/transcription"
	"github.com/callsight/callsight/ent/transcriptsegment"
	"github.com/callsight/callsight/ent/vocinsight"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentPerformance    = "AgentPerformance"
	TypeAuditResult         = "AuditResult"
	TypeCall                = "Call"
	TypeComplianceRule      = "ComplianceRule"
	TypeComplianceViolation = "ComplianceViolation"
	TypeNotification        = "Notification"
	TypeSentimentAnalysis   = "SentimentAnalysis"
	TypeTranscriptSegment   = "TranscriptSegment"
	TypeTranscription       = "Transcription"
	TypeVocInsight          = "VocInsight"
)

// AgentPerformanceMutation represents an operation that mutates the AgentPerformance nodes in the graph.
type AgentPerformanceMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	agent_id                    *string
	time_slot                   *time.Time
	count                       *int
	addcount                    *int
	avg_quality                 *float64
	addavg_quality              *float64
	avg_sentiment               *float64
	addavg_sentiment            *float64
	avg_satisfaction            *float64
	addavg_satisfaction         *float64
	avg_compliance_pass_rate    *float64
	addavg_compliance_pass_rate *float64
	avg_churn_risk              *float64
	addavg_churn_risk           *float64
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*AgentPerformance, error)
	predicates                  []predicate.AgentPerformance
}

var _ ent.Mutation = (*AgentPerformanceMutation)(nil)

// agentperformanceOption allows management of the mutation configuration using functional options.
type agentperformanceOption func(*AgentPerformanceMutation)

// newAgentPerformanceMutation creates new mutation for the AgentPerformance entity.
func newAgentPerformanceMutation(c config, op Op, opts ...agentperformanceOption) *AgentPerformanceMutation {
	m := &AgentPerformanceMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentPerformance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentPerformanceID sets the ID field of the mutation.
func withAgentPerformanceID(id string) agentperformanceOption {
	return func(m *AgentPerformanceMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentPerformance
		)
		m.oldValue = func(ctx context.Context) (*AgentPerformance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentPerformance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentPerformance sets the old AgentPerformance of the mutation.
func withAgentPerformance(node *AgentPerformance) agentperformanceOption {
	return func(m *AgentPerformanceMutation) {
		m.oldValue = func(context.Context) (*AgentPerformance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentPerformanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentPerformanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentPerformance entities.
func (m *AgentPerformanceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentPerformanceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentPerformanceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentPerformance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentPerformanceMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentPerformanceMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentPerformanceMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetTimeSlot sets the "time_slot" field.
func (m *AgentPerformanceMutation) SetTimeSlot(t time.Time) {
	m.time_slot = &t
}

// TimeSlot returns the value of the "time_slot" field in the mutation.
func (m *AgentPerformanceMutation) TimeSlot() (r time.Time, exists bool) {
	v := m.time_slot
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSlot returns the old "time_slot" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldTimeSlot(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSlot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSlot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSlot: %w", err)
	}
	return oldValue.TimeSlot, nil
}

// ResetTimeSlot resets all changes to the "time_slot" field.
func (m *AgentPerformanceMutation) ResetTimeSlot() {
	m.time_slot = nil
}

// SetCount sets the "count" field.
func (m *AgentPerformanceMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *AgentPerformanceMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *AgentPerformanceMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *AgentPerformanceMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *AgentPerformanceMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// SetAvgQuality sets the "avg_quality" field.
func (m *AgentPerformanceMutation) SetAvgQuality(f float64) {
	m.avg_quality = &f
	m.addavg_quality = nil
}

// AvgQuality returns the value of the "avg_quality" field in the mutation.
func (m *AgentPerformanceMutation) AvgQuality() (r float64, exists bool) {
	v := m.avg_quality
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgQuality returns the old "avg_quality" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldAvgQuality(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgQuality: %w", err)
	}
	return oldValue.AvgQuality, nil
}

// AddAvgQuality adds f to the "avg_quality" field.
func (m *AgentPerformanceMutation) AddAvgQuality(f float64) {
	if m.addavg_quality != nil {
		*m.addavg_quality += f
	} else {
		m.addavg_quality = &f
	}
}

// AddedAvgQuality returns the value that was added to the "avg_quality" field in this mutation.
func (m *AgentPerformanceMutation) AddedAvgQuality() (r float64, exists bool) {
	v := m.addavg_quality
	if v == nil {
		return
	}
	return *v, true
}

// ClearAvgQuality clears the value of the "avg_quality" field.
func (m *AgentPerformanceMutation) ClearAvgQuality() {
	m.avg_quality = nil
	m.addavg_quality = nil
	m.clearedFields[agentperformance.FieldAvgQuality] = struct{}{}
}

// AvgQualityCleared returns if the "avg_quality" field was cleared in this mutation.
func (m *AgentPerformanceMutation) AvgQualityCleared() bool {
	_, ok := m.clearedFields[agentperformance.FieldAvgQuality]
	return ok
}

// ResetAvgQuality resets all changes to the "avg_quality" field.
func (m *AgentPerformanceMutation) ResetAvgQuality() {
	m.avg_quality = nil
	m.addavg_quality = nil
	delete(m.clearedFields, agentperformance.FieldAvgQuality)
}

// SetAvgSentiment sets the "avg_sentiment" field.
func (m *AgentPerformanceMutation) SetAvgSentiment(f float64) {
	m.avg_sentiment = &f
	m.addavg_sentiment = nil
}

// AvgSentiment returns the value of the "avg_sentiment" field in the mutation.
func (m *AgentPerformanceMutation) AvgSentiment() (r float64, exists bool) {
	v := m.avg_sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgSentiment returns the old "avg_sentiment" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldAvgSentiment(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgSentiment: %w", err)
	}
	return oldValue.AvgSentiment, nil
}

// AddAvgSentiment adds f to the "avg_sentiment" field.
func (m *AgentPerformanceMutation) AddAvgSentiment(f float64) {
	if m.addavg_sentiment != nil {
		*m.addavg_sentiment += f
	} else {
		m.addavg_sentiment = &f
	}
}

// AddedAvgSentiment returns the value that was added to the "avg_sentiment" field in this mutation.
func (m *AgentPerformanceMutation) AddedAvgSentiment() (r float64, exists bool) {
	v := m.addavg_sentiment
	if v == nil {
		return
	}
	return *v, true
}

// ClearAvgSentiment clears the value of the "avg_sentiment" field.
func (m *AgentPerformanceMutation) ClearAvgSentiment() {
	m.avg_sentiment = nil
	m.addavg_sentiment = nil
	m.clearedFields[agentperformance.FieldAvgSentiment] = struct{}{}
}

// AvgSentimentCleared returns if the "avg_sentiment" field was cleared in this mutation.
func (m *AgentPerformanceMutation) AvgSentimentCleared() bool {
	_, ok := m.clearedFields[agentperformance.FieldAvgSentiment]
	return ok
}

// ResetAvgSentiment resets all changes to the "avg_sentiment" field.
func (m *AgentPerformanceMutation) ResetAvgSentiment() {
	m.avg_sentiment = nil
	m.addavg_sentiment = nil
	delete(m.clearedFields, agentperformance.FieldAvgSentiment)
}

// SetAvgSatisfaction sets the "avg_satisfaction" field.
func (m *AgentPerformanceMutation) SetAvgSatisfaction(f float64) {
	m.avg_satisfaction = &f
	m.addavg_satisfaction = nil
}

// AvgSatisfaction returns the value of the "avg_satisfaction" field in the mutation.
func (m *AgentPerformanceMutation) AvgSatisfaction() (r float64, exists bool) {
	v := m.avg_satisfaction
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgSatisfaction returns the old "avg_satisfaction" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldAvgSatisfaction(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgSatisfaction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgSatisfaction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgSatisfaction: %w", err)
	}
	return oldValue.AvgSatisfaction, nil
}

// AddAvgSatisfaction adds f to the "avg_satisfaction" field.
func (m *AgentPerformanceMutation) AddAvgSatisfaction(f float64) {
	if m.addavg_satisfaction != nil {
		*m.addavg_satisfaction += f
	} else {
		m.addavg_satisfaction = &f
	}
}

// AddedAvgSatisfaction returns the value that was added to the "avg_satisfaction" field in this mutation.
func (m *AgentPerformanceMutation) AddedAvgSatisfaction() (r float64, exists bool) {
	v := m.addavg_satisfaction
	if v == nil {
		return
	}
	return *v, true
}

// ClearAvgSatisfaction clears the value of the "avg_satisfaction" field.
func (m *AgentPerformanceMutation) ClearAvgSatisfaction() {
	m.avg_satisfaction = nil
	m.addavg_satisfaction = nil
	m.clearedFields[agentperformance.FieldAvgSatisfaction] = struct{}{}
}

// AvgSatisfactionCleared returns if the "avg_satisfaction" field was cleared in this mutation.
func (m *AgentPerformanceMutation) AvgSatisfactionCleared() bool {
	_, ok := m.clearedFields[agentperformance.FieldAvgSatisfaction]
	return ok
}

// ResetAvgSatisfaction resets all changes to the "avg_satisfaction" field.
func (m *AgentPerformanceMutation) ResetAvgSatisfaction() {
	m.avg_satisfaction = nil
	m.addavg_satisfaction = nil
	delete(m.clearedFields, agentperformance.FieldAvgSatisfaction)
}

// SetAvgCompliancePassRate sets the "avg_compliance_pass_rate" field.
func (m *AgentPerformanceMutation) SetAvgCompliancePassRate(f float64) {
	m.avg_compliance_pass_rate = &f
	m.addavg_compliance_pass_rate = nil
}

// AvgCompliancePassRate returns the value of the "avg_compliance_pass_rate" field in the mutation.
func (m *AgentPerformanceMutation) AvgCompliancePassRate() (r float64, exists bool) {
	v := m.avg_compliance_pass_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgCompliancePassRate returns the old "avg_compliance_pass_rate" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldAvgCompliancePassRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgCompliancePassRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgCompliancePassRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgCompliancePassRate: %w", err)
	}
	return oldValue.AvgCompliancePassRate, nil
}

// AddAvgCompliancePassRate adds f to the "avg_compliance_pass_rate" field.
func (m *AgentPerformanceMutation) AddAvgCompliancePassRate(f float64) {
	if m.addavg_compliance_pass_rate != nil {
		*m.addavg_compliance_pass_rate += f
	} else {
		m.addavg_compliance_pass_rate = &f
	}
}

// AddedAvgCompliancePassRate returns the value that was added to the "avg_compliance_pass_rate" field in this mutation.
func (m *AgentPerformanceMutation) AddedAvgCompliancePassRate() (r float64, exists bool) {
	v := m.addavg_compliance_pass_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearAvgCompliancePassRate clears the value of the "avg_compliance_pass_rate" field.
func (m *AgentPerformanceMutation) ClearAvgCompliancePassRate() {
	m.avg_compliance_pass_rate = nil
	m.addavg_compliance_pass_rate = nil
	m.clearedFields[agentperformance.FieldAvgCompliancePassRate] = struct{}{}
}

// AvgCompliancePassRateCleared returns if the "avg_compliance_pass_rate" field was cleared in this mutation.
func (m *AgentPerformanceMutation) AvgCompliancePassRateCleared() bool {
	_, ok := m.clearedFields[agentperformance.FieldAvgCompliancePassRate]
	return ok
}

// ResetAvgCompliancePassRate resets all changes to the "avg_compliance_pass_rate" field.
func (m *AgentPerformanceMutation) ResetAvgCompliancePassRate() {
	m.avg_compliance_pass_rate = nil
	m.addavg_compliance_pass_rate = nil
	delete(m.clearedFields, agentperformance.FieldAvgCompliancePassRate)
}

// SetAvgChurnRisk sets the "avg_churn_risk" field.
func (m *AgentPerformanceMutation) SetAvgChurnRisk(f float64) {
	m.avg_churn_risk = &f
	m.addavg_churn_risk = nil
}

// AvgChurnRisk returns the value of the "avg_churn_risk" field in the mutation.
func (m *AgentPerformanceMutation) AvgChurnRisk() (r float64, exists bool) {
	v := m.avg_churn_risk
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgChurnRisk returns the old "avg_churn_risk" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldAvgChurnRisk(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgChurnRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgChurnRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgChurnRisk: %w", err)
	}
	return oldValue.AvgChurnRisk, nil
}

// AddAvgChurnRisk adds f to the "avg_churn_risk" field.
func (m *AgentPerformanceMutation) AddAvgChurnRisk(f float64) {
	if m.addavg_churn_risk != nil {
		*m.addavg_churn_risk += f
	} else {
		m.addavg_churn_risk = &f
	}
}

// AddedAvgChurnRisk returns the value that was added to the "avg_churn_risk" field in this mutation.
func (m *AgentPerformanceMutation) AddedAvgChurnRisk() (r float64, exists bool) {
	v := m.addavg_churn_risk
	if v == nil {
		return
	}
	return *v, true
}

// ClearAvgChurnRisk clears the value of the "avg_churn_risk" field.
func (m *AgentPerformanceMutation) ClearAvgChurnRisk() {
	m.avg_churn_risk = nil
	m.addavg_churn_risk = nil
	m.clearedFields[agentperformance.FieldAvgChurnRisk] = struct{}{}
}

// AvgChurnRiskCleared returns if the "avg_churn_risk" field was cleared in this mutation.
func (m *AgentPerformanceMutation) AvgChurnRiskCleared() bool {
	_, ok := m.clearedFields[agentperformance.FieldAvgChurnRisk]
	return ok
}

// ResetAvgChurnRisk resets all changes to the "avg_churn_risk" field.
func (m *AgentPerformanceMutation) ResetAvgChurnRisk() {
	m.avg_churn_risk = nil
	m.addavg_churn_risk = nil
	delete(m.clearedFields, agentperformance.FieldAvgChurnRisk)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentPerformanceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentPerformanceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentPerformanceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentPerformanceMutation builder.
func (m *AgentPerformanceMutation) Where(ps ...predicate.AgentPerformance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentPerformanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentPerformanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentPerformance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentPerformanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentPerformanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentPerformance).
func (m *AgentPerformanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentPerformanceMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.agent_id != nil {
		fields = append(fields, agentperformance.FieldAgentID)
	}
	if m.time_slot != nil {
		fields = append(fields, agentperformance.FieldTimeSlot)
	}
	if m.count != nil {
		fields = append(fields, agentperformance.FieldCount)
	}
	if m.avg_quality != nil {
		fields = append(fields, agentperformance.FieldAvgQuality)
	}
	if m.avg_sentiment != nil {
		fields = append(fields, agentperformance.FieldAvgSentiment)
	}
	if m.avg_satisfaction != nil {
		fields = append(fields, agentperformance.FieldAvgSatisfaction)
	}
	if m.avg_compliance_pass_rate != nil {
		fields = append(fields, agentperformance.FieldAvgCompliancePassRate)
	}
	if m.avg_churn_risk != nil {
		fields = append(fields, agentperformance.FieldAvgChurnRisk)
	}
	if m.updated_at != nil {
		fields = append(fields, agentperformance.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentPerformanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentperformance.FieldAgentID:
		return m.AgentID()
	case agentperformance.FieldTimeSlot:
		return m.TimeSlot()
	case agentperformance.FieldCount:
		return m.Count()
	case agentperformance.FieldAvgQuality:
		return m.AvgQuality()
	case agentperformance.FieldAvgSentiment:
		return m.AvgSentiment()
	case agentperformance.FieldAvgSatisfaction:
		return m.AvgSatisfaction()
	case agentperformance.FieldAvgCompliancePassRate:
		return m.AvgCompliancePassRate()
	case agentperformance.FieldAvgChurnRisk:
		return m.AvgChurnRisk()
	case agentperformance.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentPerformanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentperformance.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentperformance.FieldTimeSlot:
		return m.OldTimeSlot(ctx)
	case agentperformance.FieldCount:
		return m.OldCount(ctx)
	case agentperformance.FieldAvgQuality:
		return m.OldAvgQuality(ctx)
	case agentperformance.FieldAvgSentiment:
		return m.OldAvgSentiment(ctx)
	case agentperformance.FieldAvgSatisfaction:
		return m.OldAvgSatisfaction(ctx)
	case agentperformance.FieldAvgCompliancePassRate:
		return m.OldAvgCompliancePassRate(ctx)
	case agentperformance.FieldAvgChurnRisk:
		return m.OldAvgChurnRisk(ctx)
	case agentperformance.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentPerformance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPerformanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentperformance.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentperformance.FieldTimeSlot:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSlot(v)
		return nil
	case agentperformance.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	case agentperformance.FieldAvgQuality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgQuality(v)
		return nil
	case agentperformance.FieldAvgSentiment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgSentiment(v)
		return nil
	case agentperformance.FieldAvgSatisfaction:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgSatisfaction(v)
		return nil
	case agentperformance.FieldAvgCompliancePassRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgCompliancePassRate(v)
		return nil
	case agentperformance.FieldAvgChurnRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgChurnRisk(v)
		return nil
	case agentperformance.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentPerformanceMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, agentperformance.FieldCount)
	}
	if m.addavg_quality != nil {
		fields = append(fields, agentperformance.FieldAvgQuality)
	}
	if m.addavg_sentiment != nil {
		fields = append(fields, agentperformance.FieldAvgSentiment)
	}
	if m.addavg_satisfaction != nil {
		fields = append(fields, agentperformance.FieldAvgSatisfaction)
	}
	if m.addavg_compliance_pass_rate != nil {
		fields = append(fields, agentperformance.FieldAvgCompliancePassRate)
	}
	if m.addavg_churn_risk != nil {
		fields = append(fields, agentperformance.FieldAvgChurnRisk)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentPerformanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentperformance.FieldCount:
		return m.AddedCount()
	case agentperformance.FieldAvgQuality:
		return m.AddedAvgQuality()
	case agentperformance.FieldAvgSentiment:
		return m.AddedAvgSentiment()
	case agentperformance.FieldAvgSatisfaction:
		return m.AddedAvgSatisfaction()
	case agentperformance.FieldAvgCompliancePassRate:
		return m.AddedAvgCompliancePassRate()
	case agentperformance.FieldAvgChurnRisk:
		return m.AddedAvgChurnRisk()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPerformanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentperformance.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	case agentperformance.FieldAvgQuality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgQuality(v)
		return nil
	case agentperformance.FieldAvgSentiment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgSentiment(v)
		return nil
	case agentperformance.FieldAvgSatisfaction:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgSatisfaction(v)
		return nil
	case agentperformance.FieldAvgCompliancePassRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgCompliancePassRate(v)
		return nil
	case agentperformance.FieldAvgChurnRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgChurnRisk(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentPerformanceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentperformance.FieldAvgQuality) {
		fields = append(fields, agentperformance.FieldAvgQuality)
	}
	if m.FieldCleared(agentperformance.FieldAvgSentiment) {
		fields = append(fields, agentperformance.FieldAvgSentiment)
	}
	if m.FieldCleared(agentperformance.FieldAvgSatisfaction) {
		fields = append(fields, agentperformance.FieldAvgSatisfaction)
	}
	if m.FieldCleared(agentperformance.FieldAvgCompliancePassRate) {
		fields = append(fields, agentperformance.FieldAvgCompliancePassRate)
	}
	if m.FieldCleared(agentperformance.FieldAvgChurnRisk) {
		fields = append(fields, agentperformance.FieldAvgChurnRisk)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentPerformanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentPerformanceMutation) ClearField(name string) error {
	switch name {
	case agentperformance.FieldAvgQuality:
		m.ClearAvgQuality()
		return nil
	case agentperformance.FieldAvgSentiment:
		m.ClearAvgSentiment()
		return nil
	case agentperformance.FieldAvgSatisfaction:
		m.ClearAvgSatisfaction()
		return nil
	case agentperformance.FieldAvgCompliancePassRate:
		m.ClearAvgCompliancePassRate()
		return nil
	case agentperformance.FieldAvgChurnRisk:
		m.ClearAvgChurnRisk()
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentPerformanceMutation) ResetField(name string) error {
	switch name {
	case agentperformance.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentperformance.FieldTimeSlot:
		m.ResetTimeSlot()
		return nil
	case agentperformance.FieldCount:
		m.ResetCount()
		return nil
	case agentperformance.FieldAvgQuality:
		m.ResetAvgQuality()
		return nil
	case agentperformance.FieldAvgSentiment:
		m.ResetAvgSentiment()
		return nil
	case agentperformance.FieldAvgSatisfaction:
		m.ResetAvgSatisfaction()
		return nil
	case agentperformance.FieldAvgCompliancePassRate:
		m.ResetAvgCompliancePassRate()
		return nil
	case agentperformance.FieldAvgChurnRisk:
		m.ResetAvgChurnRisk()
		return nil
	case agentperformance.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentPerformanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentPerformanceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentPerformanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentPerformanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentPerformanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentPerformanceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentPerformanceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentPerformance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentPerformanceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentPerformance edge %s", name)
}

// AuditResultMutation represents an operation that mutates the AuditResult nodes in the graph.
type AuditResultMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	call_id                     *string
	overall_score               *int
	addoverall_score            *int
	compliance_status           *auditresult.ComplianceStatus
	script_adherence            *int
	addscript_adherence         *int
	customer_service            *int
	addcustomer_service         *int
	resolution_effectiveness    *int
	addresolution_effectiveness *int
	flags_for_review            *bool
	review_reason               *string
	processing_time_ms          *int64
	addprocessing_time_ms       *int64
	event_id                    *string
	created_at                  *time.Time
	clearedFields               map[string]struct{}
	violations                  map[string]struct{}
	removedviolations           map[string]struct{}
	clearedviolations           bool
	done                        bool
	oldValue                    func(context.Context) (*AuditResult, error)
	predicates                  []predicate.AuditResult
}

var _ ent.Mutation = (*AuditResultMutation)(nil)

// auditresultOption allows management of the mutation configuration using functional options.
type auditresultOption func(*AuditResultMutation)

// newAuditResultMutation creates new mutation for the AuditResult entity.
func newAuditResultMutation(c config, op Op, opts ...auditresultOption) *AuditResultMutation {
	m := &AuditResultMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditResultID sets the ID field of the mutation.
func withAuditResultID(id string) auditresultOption {
	return func(m *AuditResultMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditResult
		)
		m.oldValue = func(ctx context.Context) (*AuditResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditResult sets the old AuditResult of the mutation.
func withAuditResult(node *AuditResult) auditresultOption {
	return func(m *AuditResultMutation) {
		m.oldValue = func(context.Context) (*AuditResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditResult entities.
func (m *AuditResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCallID sets the "call_id" field.
func (m *AuditResultMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *AuditResultMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the AuditResult entity.
// If the AuditResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResultMutation) OldCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ResetCallID resets all changes to the "call_id" field.
func (m *AuditResultMutation) ResetCallID() {
	m.call_id = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *AuditResultMutation) SetOverallScore(i int) {
	m.overall_score = &i
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *AuditResultMutation) OverallScore() (r int, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the AuditResult entity.
// If the AuditResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResultMutation) OldOverallScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds i to the "overall_score" field.
func (m *AuditResultMutation) AddOverallScore(i int) {
	if m.addoverall_score != nil {
		*m.addoverall_score += i
	} else {
		m.addoverall_score = &i
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *AuditResultMutation) AddedOverallScore() (r int, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *AuditResultMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetComplianceStatus sets the "compliance_status" field.
func (m *AuditResultMutation) SetComplianceStatus(as auditresult.ComplianceStatus) {
	m.compliance_status = &as
}

// ComplianceStatus returns the value of the "compliance_status" field in the mutation.
func (m *AuditResultMutation) ComplianceStatus() (r auditresult.ComplianceStatus, exists bool) {
	v := m.compliance_status
	if v == nil {
		return
	}
	return *v, true
}

// OldComplianceStatus returns the old "compliance_status" field's value of the AuditResult entity.
// If the AuditResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResultMutation) OldComplianceStatus(ctx context.Context) (v auditresult.ComplianceStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplianceStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplianceStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplianceStatus: %w", err)
	}
	return oldValue.ComplianceStatus, nil
}

// ResetComplianceStatus resets all changes to the "compliance_status" field.
func (m *AuditResultMutation) ResetComplianceStatus() {
	m.compliance_status = nil
}

// SetScriptAdherence sets the "script_adherence" field.
func (m *AuditResultMutation) SetScriptAdherence(i int) {
	m.script_adherence = &i
	m.addscript_adherence = nil
}

// ScriptAdherence returns the value of the "script_adherence" field in the mutation.
func (m *AuditResultMutation) ScriptAdherence() (r int, exists bool) {
	v := m.script_adherence
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptAdherence returns the old "script_adherence" field's value of the AuditResult entity.
// If the AuditResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResultMutation) OldScriptAdherence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptAdherence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptAdherence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptAdherence: %w", err)
	}
	return oldValue.ScriptAdherence, nil
}

// AddScriptAdherence adds i to the "script_adherence" field.
func (m *AuditResultMutation) AddScriptAdherence(i int) {
	if m.addscript_adherence != nil {
		*m.addscript_adherence += i
	} else {
		m.addscript_adherence = &i
	}
}

// AddedScriptAdherence returns the value that was added to the "script_adherence" field in this mutation.
func (m *AuditResultMutation) AddedScriptAdherence() (r int, exists bool) {
	v := m.addscript_adherence
	if v == nil {
		return
	}
	return *v, true
}

// ResetScriptAdherence resets all changes to the "script_adherence" field.
func (m *AuditResultMutation) ResetScriptAdherence() {
	m.script_adherence = nil
	m.addscript_adherence = nil
}

// SetCustomerService sets the "customer_service" field.
func (m *AuditResultMutation) SetCustomerService(i int) {
	m.customer_service = &i
	m.addcustomer_service = nil
}

// CustomerService returns the value of the "customer_service" field in the mutation.
func (m *AuditResultMutation) CustomerService() (r int, exists bool) {
	v := m.customer_service
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerService returns the old "customer_service" field's value of the AuditResult entity.
// If the AuditResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResultMutation) OldCustomerService(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerService: %w", err)
	}
	return oldValue.CustomerService, nil
}

// AddCustomerService adds i to the "customer_service" field.
func (m *AuditResultMutation) AddCustomerService(i int) {
	if m.addcustomer_service != nil {
		*m.addcustomer_service += i
	} else {
		m.addcustomer_service = &i
	}
}

// AddedCustomerService returns the value that was added to the "customer_service" field in this mutation.
func (m *AuditResultMutation) AddedCustomerService() (r int, exists bool) {
	v := m.addcustomer_service
	if v == nil {
		return
	}
	return *v, true
}

// ResetCustomerService resets all changes to the "customer_service" field.
func (m *AuditResultMutation) ResetCustomerService() {
	m.customer_service = nil
	m.addcustomer_service = nil
}

// SetResolutionEffectiveness sets the "resolution_effectiveness" field.
func (m *AuditResultMutation) SetResolutionEffectiveness(i int) {
	m.resolution_effectiveness = &i
	m.addresolution_effectiveness = nil
}

// ResolutionEffectiveness returns the value of the "resolution_effectiveness" field in the mutation.
func (m *AuditResultMutation) ResolutionEffectiveness() (r int, exists bool) {
	v := m.resolution_effectiveness
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionEffectiveness returns the old "resolution_effectiveness" field's value of the AuditResult entity.
// If the AuditResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResultMutation) OldResolutionEffectiveness(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionEffectiveness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionEffectiveness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionEffectiveness: %w", err)
	}
	return oldValue.ResolutionEffectiveness, nil
}

// AddResolutionEffectiveness adds i to the "resolution_effectiveness" field.
func (m *AuditResultMutation) AddResolutionEffectiveness(i int) {
	if m.addresolution_effectiveness != nil {
		*m.addresolution_effectiveness += i
	} else {
		m.addresolution_effectiveness = &i
	}
}

// AddedResolutionEffectiveness returns the value that was added to the "resolution_effectiveness" field in this mutation.
func (m *AuditResultMutation) AddedResolutionEffectiveness() (r int, exists bool) {
	v := m.addresolution_effectiveness
	if v == nil {
		return
	}
	return *v, true
}

// ResetResolutionEffectiveness resets all changes to the "resolution_effectiveness" field.
func (m *AuditResultMutation) ResetResolutionEffectiveness() {
	m.resolution_effectiveness = nil
	m.addresolution_effectiveness = nil
}

// SetFlagsForReview sets the "flags_for_review" field.
func (m *AuditResultMutation) SetFlagsForReview(b bool) {
	m.flags_for_review = &b
}

// FlagsForReview returns the value of the "flags_for_review" field in the mutation.
func (m *AuditResultMutation) FlagsForReview() (r bool, exists bool) {
	v := m.flags_for_review
	if v == nil {
		return
	}
	return *v, true
}

// OldFlagsForReview returns the old "flags_for_review" field's value of the AuditResult entity.
// If the AuditResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResultMutation) OldFlagsForReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlagsForReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlagsForReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlagsForReview: %w", err)
	}
	return oldValue.FlagsForReview, nil
}

// ResetFlagsForReview resets all changes to the "flags_for_review" field.
func (m *AuditResultMutation) ResetFlagsForReview() {
	m.flags_for_review = nil
}

// SetReviewReason sets the "review_reason" field.
func (m *AuditResultMutation) SetReviewReason(s string) {
	m.review_reason = &s
}

// ReviewReason returns the value of the "review_reason" field in the mutation.
func (m *AuditResultMutation) ReviewReason() (r string, exists bool) {
	v := m.review_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewReason returns the old "review_reason" field's value of the AuditResult entity.
// If the AuditResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResultMutation) OldReviewReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewReason: %w", err)
	}
	return oldValue.ReviewReason, nil
}

// ClearReviewReason clears the value of the "review_reason" field.
func (m *AuditResultMutation) ClearReviewReason() {
	m.review_reason = nil
	m.clearedFields[auditresult.FieldReviewReason] = struct{}{}
}

// ReviewReasonCleared returns if the "review_reason" field was cleared in this mutation.
func (m *AuditResultMutation) ReviewReasonCleared() bool {
	_, ok := m.clearedFields[auditresult.FieldReviewReason]
	return ok
}

// ResetReviewReason resets all changes to the "review_reason" field.
func (m *AuditResultMutation) ResetReviewReason() {
	m.review_reason = nil
	delete(m.clearedFields, auditresult.FieldReviewReason)
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (m *AuditResultMutation) SetProcessingTimeMs(i int64) {
	m.processing_time_ms = &i
	m.addprocessing_time_ms = nil
}

// ProcessingTimeMs returns the value of the "processing_time_ms" field in the mutation.
func (m *AuditResultMutation) ProcessingTimeMs() (r int64, exists bool) {
	v := m.processing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeMs returns the old "processing_time_ms" field's value of the AuditResult entity.
// If the AuditResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResultMutation) OldProcessingTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeMs: %w", err)
	}
	return oldValue.ProcessingTimeMs, nil
}

// AddProcessingTimeMs adds i to the "processing_time_ms" field.
func (m *AuditResultMutation) AddProcessingTimeMs(i int64) {
	if m.addprocessing_time_ms != nil {
		*m.addprocessing_time_ms += i
	} else {
		m.addprocessing_time_ms = &i
	}
}

// AddedProcessingTimeMs returns the value that was added to the "processing_time_ms" field in this mutation.
func (m *AuditResultMutation) AddedProcessingTimeMs() (r int64, exists bool) {
	v := m.addprocessing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingTimeMs resets all changes to the "processing_time_ms" field.
func (m *AuditResultMutation) ResetProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
}

// SetEventID sets the "event_id" field.
func (m *AuditResultMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *AuditResultMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the AuditResult entity.
// If the AuditResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResultMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *AuditResultMutation) ResetEventID() {
	m.event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditResult entity.
// If the AuditResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddViolationIDs adds the "violations" edge to the ComplianceViolation entity by ids.
func (m *AuditResultMutation) AddViolationIDs(ids ...string) {
	if m.violations == nil {
		m.violations = make(map[string]struct{})
	}
	for i := range ids {
		m.violations[ids[i]] = struct{}{}
	}
}

// ClearViolations clears the "violations" edge to the ComplianceViolation entity.
func (m *AuditResultMutation) ClearViolations() {
	m.clearedviolations = true
}

// ViolationsCleared reports if the "violations" edge to the ComplianceViolation entity was cleared.
func (m *AuditResultMutation) ViolationsCleared() bool {
	return m.clearedviolations
}

// RemoveViolationIDs removes the "violations" edge to the ComplianceViolation entity by IDs.
func (m *AuditResultMutation) RemoveViolationIDs(ids ...string) {
	if m.removedviolations == nil {
		m.removedviolations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.violations, ids[i])
		m.removedviolations[ids[i]] = struct{}{}
	}
}

// RemovedViolations returns the removed IDs of the "violations" edge to the ComplianceViolation entity.
func (m *AuditResultMutation) RemovedViolationsIDs() (ids []string) {
	for id := range m.removedviolations {
		ids = append(ids, id)
	}
	return
}

// ViolationsIDs returns the "violations" edge IDs in the mutation.
func (m *AuditResultMutation) ViolationsIDs() (ids []string) {
	for id := range m.violations {
		ids = append(ids, id)
	}
	return
}

// ResetViolations resets all changes to the "violations" edge.
func (m *AuditResultMutation) ResetViolations() {
	m.violations = nil
	m.clearedviolations = false
	m.removedviolations = nil
}

// Where appends a list predicates to the AuditResultMutation builder.
func (m *AuditResultMutation) Where(ps ...predicate.AuditResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditResult).
func (m *AuditResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditResultMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.call_id != nil {
		fields = append(fields, auditresult.FieldCallID)
	}
	if m.overall_score != nil {
		fields = append(fields, auditresult.FieldOverallScore)
	}
	if m.compliance_status != nil {
		fields = append(fields, auditresult.FieldComplianceStatus)
	}
	if m.script_adherence != nil {
		fields = append(fields, auditresult.FieldScriptAdherence)
	}
	if m.customer_service != nil {
		fields = append(fields, auditresult.FieldCustomerService)
	}
	if m.resolution_effectiveness != nil {
		fields = append(fields, auditresult.FieldResolutionEffectiveness)
	}
	if m.flags_for_review != nil {
		fields = append(fields, auditresult.FieldFlagsForReview)
	}
	if m.review_reason != nil {
		fields = append(fields, auditresult.FieldReviewReason)
	}
	if m.processing_time_ms != nil {
		fields = append(fields, auditresult.FieldProcessingTimeMs)
	}
	if m.event_id != nil {
		fields = append(fields, auditresult.FieldEventID)
	}
	if m.created_at != nil {
		fields = append(fields, auditresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditresult.FieldCallID:
		return m.CallID()
	case auditresult.FieldOverallScore:
		return m.OverallScore()
	case auditresult.FieldComplianceStatus:
		return m.ComplianceStatus()
	case auditresult.FieldScriptAdherence:
		return m.ScriptAdherence()
	case auditresult.FieldCustomerService:
		return m.CustomerService()
	case auditresult.FieldResolutionEffectiveness:
		return m.ResolutionEffectiveness()
	case auditresult.FieldFlagsForReview:
		return m.FlagsForReview()
	case auditresult.FieldReviewReason:
		return m.ReviewReason()
	case auditresult.FieldProcessingTimeMs:
		return m.ProcessingTimeMs()
	case auditresult.FieldEventID:
		return m.EventID()
	case auditresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditresult.FieldCallID:
		return m.OldCallID(ctx)
	case auditresult.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case auditresult.FieldComplianceStatus:
		return m.OldComplianceStatus(ctx)
	case auditresult.FieldScriptAdherence:
		return m.OldScriptAdherence(ctx)
	case auditresult.FieldCustomerService:
		return m.OldCustomerService(ctx)
	case auditresult.FieldResolutionEffectiveness:
		return m.OldResolutionEffectiveness(ctx)
	case auditresult.FieldFlagsForReview:
		return m.OldFlagsForReview(ctx)
	case auditresult.FieldReviewReason:
		return m.OldReviewReason(ctx)
	case auditresult.FieldProcessingTimeMs:
		return m.OldProcessingTimeMs(ctx)
	case auditresult.FieldEventID:
		return m.OldEventID(ctx)
	case auditresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditresult.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case auditresult.FieldOverallScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case auditresult.FieldComplianceStatus:
		v, ok := value.(auditresult.ComplianceStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplianceStatus(v)
		return nil
	case auditresult.FieldScriptAdherence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptAdherence(v)
		return nil
	case auditresult.FieldCustomerService:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerService(v)
		return nil
	case auditresult.FieldResolutionEffectiveness:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionEffectiveness(v)
		return nil
	case auditresult.FieldFlagsForReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlagsForReview(v)
		return nil
	case auditresult.FieldReviewReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewReason(v)
		return nil
	case auditresult.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeMs(v)
		return nil
	case auditresult.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case auditresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditResultMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_score != nil {
		fields = append(fields, auditresult.FieldOverallScore)
	}
	if m.addscript_adherence != nil {
		fields = append(fields, auditresult.FieldScriptAdherence)
	}
	if m.addcustomer_service != nil {
		fields = append(fields, auditresult.FieldCustomerService)
	}
	if m.addresolution_effectiveness != nil {
		fields = append(fields, auditresult.FieldResolutionEffectiveness)
	}
	if m.addprocessing_time_ms != nil {
		fields = append(fields, auditresult.FieldProcessingTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditresult.FieldOverallScore:
		return m.AddedOverallScore()
	case auditresult.FieldScriptAdherence:
		return m.AddedScriptAdherence()
	case auditresult.FieldCustomerService:
		return m.AddedCustomerService()
	case auditresult.FieldResolutionEffectiveness:
		return m.AddedResolutionEffectiveness()
	case auditresult.FieldProcessingTimeMs:
		return m.AddedProcessingTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditresult.FieldOverallScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case auditresult.FieldScriptAdherence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScriptAdherence(v)
		return nil
	case auditresult.FieldCustomerService:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCustomerService(v)
		return nil
	case auditresult.FieldResolutionEffectiveness:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResolutionEffectiveness(v)
		return nil
	case auditresult.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown AuditResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditresult.FieldReviewReason) {
		fields = append(fields, auditresult.FieldReviewReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditResultMutation) ClearField(name string) error {
	switch name {
	case auditresult.FieldReviewReason:
		m.ClearReviewReason()
		return nil
	}
	return fmt.Errorf("unknown AuditResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditResultMutation) ResetField(name string) error {
	switch name {
	case auditresult.FieldCallID:
		m.ResetCallID()
		return nil
	case auditresult.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case auditresult.FieldComplianceStatus:
		m.ResetComplianceStatus()
		return nil
	case auditresult.FieldScriptAdherence:
		m.ResetScriptAdherence()
		return nil
	case auditresult.FieldCustomerService:
		m.ResetCustomerService()
		return nil
	case auditresult.FieldResolutionEffectiveness:
		m.ResetResolutionEffectiveness()
		return nil
	case auditresult.FieldFlagsForReview:
		m.ResetFlagsForReview()
		return nil
	case auditresult.FieldReviewReason:
		m.ResetReviewReason()
		return nil
	case auditresult.FieldProcessingTimeMs:
		m.ResetProcessingTimeMs()
		return nil
	case auditresult.FieldEventID:
		m.ResetEventID()
		return nil
	case auditresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.violations != nil {
		edges = append(edges, auditresult.EdgeViolations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditresult.EdgeViolations:
		ids := make([]ent.Value, 0, len(m.violations))
		for id := range m.violations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedviolations != nil {
		edges = append(edges, auditresult.EdgeViolations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditResultMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case auditresult.EdgeViolations:
		ids := make([]ent.Value, 0, len(m.removedviolations))
		for id := range m.removedviolations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedviolations {
		edges = append(edges, auditresult.EdgeViolations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditResultMutation) EdgeCleared(name string) bool {
	switch name {
	case auditresult.EdgeViolations:
		return m.clearedviolations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditResultMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditResultMutation) ResetEdge(name string) error {
	switch name {
	case auditresult.EdgeViolations:
		m.ResetViolations()
		return nil
	}
	return fmt.Errorf("unknown AuditResult edge %s", name)
}

// CallMutation represents an operation that mutates the Call nodes in the graph.
type CallMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	caller_id          *string
	agent_id           *string
	channel            *string
	audio_key          *string
	file_format        *string
	file_size_bytes    *int64
	addfile_size_bytes *int64
	duration           *float64
	addduration        *float64
	start_time         *time.Time
	status             *call.Status
	correlation_id     *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Call, error)
	predicates         []predicate.Call
}

var _ ent.Mutation = (*CallMutation)(nil)

// callOption allows management of the mutation configuration using functional options.
type callOption func(*CallMutation)

// newCallMutation creates new mutation for the Call entity.
func newCallMutation(c config, op Op, opts ...callOption) *CallMutation {
	m := &CallMutation{
		config:        c,
		op:            op,
		typ:           TypeCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCallID sets the ID field of the mutation.
func withCallID(id string) callOption {
	return func(m *CallMutation) {
		var (
			err   error
			once  sync.Once
			value *Call
		)
		m.oldValue = func(ctx context.Context) (*Call, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Call.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCall sets the old Call of the mutation.
func withCall(node *Call) callOption {
	return func(m *CallMutation) {
		m.oldValue = func(context.Context) (*Call, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Call entities.
func (m *CallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Call.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCallerID sets the "caller_id" field.
func (m *CallMutation) SetCallerID(s string) {
	m.caller_id = &s
}

// CallerID returns the value of the "caller_id" field in the mutation.
func (m *CallMutation) CallerID() (r string, exists bool) {
	v := m.caller_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallerID returns the old "caller_id" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldCallerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallerID: %w", err)
	}
	return oldValue.CallerID, nil
}

// ResetCallerID resets all changes to the "caller_id" field.
func (m *CallMutation) ResetCallerID() {
	m.caller_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *CallMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CallMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CallMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetChannel sets the "channel" field.
func (m *CallMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *CallMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *CallMutation) ResetChannel() {
	m.channel = nil
}

// SetAudioKey sets the "audio_key" field.
func (m *CallMutation) SetAudioKey(s string) {
	m.audio_key = &s
}

// AudioKey returns the value of the "audio_key" field in the mutation.
func (m *CallMutation) AudioKey() (r string, exists bool) {
	v := m.audio_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioKey returns the old "audio_key" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldAudioKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioKey: %w", err)
	}
	return oldValue.AudioKey, nil
}

// ResetAudioKey resets all changes to the "audio_key" field.
func (m *CallMutation) ResetAudioKey() {
	m.audio_key = nil
}

// SetFileFormat sets the "file_format" field.
func (m *CallMutation) SetFileFormat(s string) {
	m.file_format = &s
}

// FileFormat returns the value of the "file_format" field in the mutation.
func (m *CallMutation) FileFormat() (r string, exists bool) {
	v := m.file_format
	if v == nil {
		return
	}
	return *v, true
}

// OldFileFormat returns the old "file_format" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldFileFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileFormat: %w", err)
	}
	return oldValue.FileFormat, nil
}

// ResetFileFormat resets all changes to the "file_format" field.
func (m *CallMutation) ResetFileFormat() {
	m.file_format = nil
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (m *CallMutation) SetFileSizeBytes(i int64) {
	m.file_size_bytes = &i
	m.addfile_size_bytes = nil
}

// FileSizeBytes returns the value of the "file_size_bytes" field in the mutation.
func (m *CallMutation) FileSizeBytes() (r int64, exists bool) {
	v := m.file_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSizeBytes returns the old "file_size_bytes" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldFileSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSizeBytes: %w", err)
	}
	return oldValue.FileSizeBytes, nil
}

// AddFileSizeBytes adds i to the "file_size_bytes" field.
func (m *CallMutation) AddFileSizeBytes(i int64) {
	if m.addfile_size_bytes != nil {
		*m.addfile_size_bytes += i
	} else {
		m.addfile_size_bytes = &i
	}
}

// AddedFileSizeBytes returns the value that was added to the "file_size_bytes" field in this mutation.
func (m *CallMutation) AddedFileSizeBytes() (r int64, exists bool) {
	v := m.addfile_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSizeBytes resets all changes to the "file_size_bytes" field.
func (m *CallMutation) ResetFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
}

// SetDuration sets the "duration" field.
func (m *CallMutation) SetDuration(f float64) {
	m.duration = &f
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *CallMutation) Duration() (r float64, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldDuration(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds f to the "duration" field.
func (m *CallMutation) AddDuration(f float64) {
	if m.addduration != nil {
		*m.addduration += f
	} else {
		m.addduration = &f
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *CallMutation) AddedDuration() (r float64, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ClearDuration clears the value of the "duration" field.
func (m *CallMutation) ClearDuration() {
	m.duration = nil
	m.addduration = nil
	m.clearedFields[call.FieldDuration] = struct{}{}
}

// DurationCleared returns if the "duration" field was cleared in this mutation.
func (m *CallMutation) DurationCleared() bool {
	_, ok := m.clearedFields[call.FieldDuration]
	return ok
}

// ResetDuration resets all changes to the "duration" field.
func (m *CallMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
	delete(m.clearedFields, call.FieldDuration)
}

// SetStartTime sets the "start_time" field.
func (m *CallMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *CallMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *CallMutation) ResetStartTime() {
	m.start_time = nil
}

// SetStatus sets the "status" field.
func (m *CallMutation) SetStatus(c call.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CallMutation) Status() (r call.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldStatus(ctx context.Context) (v call.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CallMutation) ResetStatus() {
	m.status = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *CallMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *CallMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *CallMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CallMutation builder.
func (m *CallMutation) Where(ps ...predicate.Call) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Call, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Call).
func (m *CallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CallMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.caller_id != nil {
		fields = append(fields, call.FieldCallerID)
	}
	if m.agent_id != nil {
		fields = append(fields, call.FieldAgentID)
	}
	if m.channel != nil {
		fields = append(fields, call.FieldChannel)
	}
	if m.audio_key != nil {
		fields = append(fields, call.FieldAudioKey)
	}
	if m.file_format != nil {
		fields = append(fields, call.FieldFileFormat)
	}
	if m.file_size_bytes != nil {
		fields = append(fields, call.FieldFileSizeBytes)
	}
	if m.duration != nil {
		fields = append(fields, call.FieldDuration)
	}
	if m.start_time != nil {
		fields = append(fields, call.FieldStartTime)
	}
	if m.status != nil {
		fields = append(fields, call.FieldStatus)
	}
	if m.correlation_id != nil {
		fields = append(fields, call.FieldCorrelationID)
	}
	if m.created_at != nil {
		fields = append(fields, call.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case call.FieldCallerID:
		return m.CallerID()
	case call.FieldAgentID:
		return m.AgentID()
	case call.FieldChannel:
		return m.Channel()
	case call.FieldAudioKey:
		return m.AudioKey()
	case call.FieldFileFormat:
		return m.FileFormat()
	case call.FieldFileSizeBytes:
		return m.FileSizeBytes()
	case call.FieldDuration:
		return m.Duration()
	case call.FieldStartTime:
		return m.StartTime()
	case call.FieldStatus:
		return m.Status()
	case call.FieldCorrelationID:
		return m.CorrelationID()
	case call.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case call.FieldCallerID:
		return m.OldCallerID(ctx)
	case call.FieldAgentID:
		return m.OldAgentID(ctx)
	case call.FieldChannel:
		return m.OldChannel(ctx)
	case call.FieldAudioKey:
		return m.OldAudioKey(ctx)
	case call.FieldFileFormat:
		return m.OldFileFormat(ctx)
	case call.FieldFileSizeBytes:
		return m.OldFileSizeBytes(ctx)
	case call.FieldDuration:
		return m.OldDuration(ctx)
	case call.FieldStartTime:
		return m.OldStartTime(ctx)
	case call.FieldStatus:
		return m.OldStatus(ctx)
	case call.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case call.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Call field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case call.FieldCallerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallerID(v)
		return nil
	case call.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case call.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case call.FieldAudioKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioKey(v)
		return nil
	case call.FieldFileFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileFormat(v)
		return nil
	case call.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSizeBytes(v)
		return nil
	case call.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case call.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case call.FieldStatus:
		v, ok := value.(call.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case call.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case call.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Call field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CallMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size_bytes != nil {
		fields = append(fields, call.FieldFileSizeBytes)
	}
	if m.addduration != nil {
		fields = append(fields, call.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case call.FieldFileSizeBytes:
		return m.AddedFileSizeBytes()
	case call.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case call.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSizeBytes(v)
		return nil
	case call.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown Call numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(call.FieldDuration) {
		fields = append(fields, call.FieldDuration)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CallMutation) ClearField(name string) error {
	switch name {
	case call.FieldDuration:
		m.ClearDuration()
		return nil
	}
	return fmt.Errorf("unknown Call nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CallMutation) ResetField(name string) error {
	switch name {
	case call.FieldCallerID:
		m.ResetCallerID()
		return nil
	case call.FieldAgentID:
		m.ResetAgentID()
		return nil
	case call.FieldChannel:
		m.ResetChannel()
		return nil
	case call.FieldAudioKey:
		m.ResetAudioKey()
		return nil
	case call.FieldFileFormat:
		m.ResetFileFormat()
		return nil
	case call.FieldFileSizeBytes:
		m.ResetFileSizeBytes()
		return nil
	case call.FieldDuration:
		m.ResetDuration()
		return nil
	case call.FieldStartTime:
		m.ResetStartTime()
		return nil
	case call.FieldStatus:
		m.ResetStatus()
		return nil
	case call.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case call.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Call field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CallMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CallMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CallMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CallMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Call unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CallMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Call edge %s", name)
}

// ComplianceRuleMutation represents an operation that mutates the ComplianceRule nodes in the graph.
type ComplianceRuleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	category      *string
	severity      *compliancerule.Severity
	is_active     *bool
	definition    *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ComplianceRule, error)
	predicates    []predicate.ComplianceRule
}

var _ ent.Mutation = (*ComplianceRuleMutation)(nil)

// complianceruleOption allows management of the mutation configuration using functional options.
type complianceruleOption func(*ComplianceRuleMutation)

// newComplianceRuleMutation creates new mutation for the ComplianceRule entity.
func newComplianceRuleMutation(c config, op Op, opts ...complianceruleOption) *ComplianceRuleMutation {
	m := &ComplianceRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeComplianceRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withComplianceRuleID sets the ID field of the mutation.
func withComplianceRuleID(id string) complianceruleOption {
	return func(m *ComplianceRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *ComplianceRule
		)
		m.oldValue = func(ctx context.Context) (*ComplianceRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ComplianceRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComplianceRule sets the old ComplianceRule of the mutation.
func withComplianceRule(node *ComplianceRule) complianceruleOption {
	return func(m *ComplianceRuleMutation) {
		m.oldValue = func(context.Context) (*ComplianceRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ComplianceRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ComplianceRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ComplianceRule entities.
func (m *ComplianceRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ComplianceRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ComplianceRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ComplianceRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ComplianceRuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ComplianceRuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ComplianceRule entity.
// If the ComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceRuleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ComplianceRuleMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *ComplianceRuleMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ComplianceRuleMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ComplianceRule entity.
// If the ComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceRuleMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ComplianceRuleMutation) ResetCategory() {
	m.category = nil
}

// SetSeverity sets the "severity" field.
func (m *ComplianceRuleMutation) SetSeverity(c compliancerule.Severity) {
	m.severity = &c
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ComplianceRuleMutation) Severity() (r compliancerule.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the ComplianceRule entity.
// If the ComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceRuleMutation) OldSeverity(ctx context.Context) (v compliancerule.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ComplianceRuleMutation) ResetSeverity() {
	m.severity = nil
}

// SetIsActive sets the "is_active" field.
func (m *ComplianceRuleMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ComplianceRuleMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ComplianceRule entity.
// If the ComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceRuleMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ComplianceRuleMutation) ResetIsActive() {
	m.is_active = nil
}

// SetDefinition sets the "definition" field.
func (m *ComplianceRuleMutation) SetDefinition(value map[string]interface{}) {
	m.definition = &value
}

// Definition returns the value of the "definition" field in the mutation.
func (m *ComplianceRuleMutation) Definition() (r map[string]interface{}, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinition returns the old "definition" field's value of the ComplianceRule entity.
// If the ComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceRuleMutation) OldDefinition(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinition: %w", err)
	}
	return oldValue.Definition, nil
}

// ResetDefinition resets all changes to the "definition" field.
func (m *ComplianceRuleMutation) ResetDefinition() {
	m.definition = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ComplianceRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ComplianceRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ComplianceRule entity.
// If the ComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ComplianceRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ComplianceRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ComplianceRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ComplianceRule entity.
// If the ComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ComplianceRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ComplianceRuleMutation builder.
func (m *ComplianceRuleMutation) Where(ps ...predicate.ComplianceRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ComplianceRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ComplianceRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ComplianceRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ComplianceRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ComplianceRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ComplianceRule).
func (m *ComplianceRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ComplianceRuleMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, compliancerule.FieldName)
	}
	if m.category != nil {
		fields = append(fields, compliancerule.FieldCategory)
	}
	if m.severity != nil {
		fields = append(fields, compliancerule.FieldSeverity)
	}
	if m.is_active != nil {
		fields = append(fields, compliancerule.FieldIsActive)
	}
	if m.definition != nil {
		fields = append(fields, compliancerule.FieldDefinition)
	}
	if m.created_at != nil {
		fields = append(fields, compliancerule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, compliancerule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ComplianceRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case compliancerule.FieldName:
		return m.Name()
	case compliancerule.FieldCategory:
		return m.Category()
	case compliancerule.FieldSeverity:
		return m.Severity()
	case compliancerule.FieldIsActive:
		return m.IsActive()
	case compliancerule.FieldDefinition:
		return m.Definition()
	case compliancerule.FieldCreatedAt:
		return m.CreatedAt()
	case compliancerule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ComplianceRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case compliancerule.FieldName:
		return m.OldName(ctx)
	case compliancerule.FieldCategory:
		return m.OldCategory(ctx)
	case compliancerule.FieldSeverity:
		return m.OldSeverity(ctx)
	case compliancerule.FieldIsActive:
		return m.OldIsActive(ctx)
	case compliancerule.FieldDefinition:
		return m.OldDefinition(ctx)
	case compliancerule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case compliancerule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ComplianceRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComplianceRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case compliancerule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case compliancerule.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case compliancerule.FieldSeverity:
		v, ok := value.(compliancerule.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case compliancerule.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case compliancerule.FieldDefinition:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinition(v)
		return nil
	case compliancerule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case compliancerule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ComplianceRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ComplianceRuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ComplianceRuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComplianceRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ComplianceRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ComplianceRuleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ComplianceRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ComplianceRuleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ComplianceRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ComplianceRuleMutation) ResetField(name string) error {
	switch name {
	case compliancerule.FieldName:
		m.ResetName()
		return nil
	case compliancerule.FieldCategory:
		m.ResetCategory()
		return nil
	case compliancerule.FieldSeverity:
		m.ResetSeverity()
		return nil
	case compliancerule.FieldIsActive:
		m.ResetIsActive()
		return nil
	case compliancerule.FieldDefinition:
		m.ResetDefinition()
		return nil
	case compliancerule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case compliancerule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ComplianceRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ComplianceRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ComplianceRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ComplianceRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ComplianceRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ComplianceRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ComplianceRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ComplianceRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ComplianceRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ComplianceRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ComplianceRule edge %s", name)
}

// ComplianceViolationMutation represents an operation that mutates the ComplianceViolation nodes in the graph.
type ComplianceViolationMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	rule_id              *string
	rule_name            *string
	severity             *complianceviolation.Severity
	description          *string
	timestamp_in_call    *float64
	addtimestamp_in_call *float64
	evidence             *string
	clearedFields        map[string]struct{}
	audit_result         *string
	clearedaudit_result  bool
	done                 bool
	oldValue             func(context.Context) (*ComplianceViolation, error)
	predicates           []predicate.ComplianceViolation
}

var _ ent.Mutation = (*ComplianceViolationMutation)(nil)

// complianceviolationOption allows management of the mutation configuration using functional options.
type complianceviolationOption func(*ComplianceViolationMutation)

// newComplianceViolationMutation creates new mutation for the ComplianceViolation entity.
func newComplianceViolationMutation(c config, op Op, opts ...complianceviolationOption) *ComplianceViolationMutation {
	m := &ComplianceViolationMutation{
		config:        c,
		op:            op,
		typ:           TypeComplianceViolation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withComplianceViolationID sets the ID field of the mutation.
func withComplianceViolationID(id string) complianceviolationOption {
	return func(m *ComplianceViolationMutation) {
		var (
			err   error
			once  sync.Once
			value *ComplianceViolation
		)
		m.oldValue = func(ctx context.Context) (*ComplianceViolation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ComplianceViolation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComplianceViolation sets the old ComplianceViolation of the mutation.
func withComplianceViolation(node *ComplianceViolation) complianceviolationOption {
	return func(m *ComplianceViolationMutation) {
		m.oldValue = func(context.Context) (*ComplianceViolation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ComplianceViolationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ComplianceViolationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ComplianceViolation entities.
func (m *ComplianceViolationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ComplianceViolationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ComplianceViolationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ComplianceViolation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditResultID sets the "audit_result_id" field.
func (m *ComplianceViolationMutation) SetAuditResultID(s string) {
	m.audit_result = &s
}

// AuditResultID returns the value of the "audit_result_id" field in the mutation.
func (m *ComplianceViolationMutation) AuditResultID() (r string, exists bool) {
	v := m.audit_result
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditResultID returns the old "audit_result_id" field's value of the ComplianceViolation entity.
// If the ComplianceViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceViolationMutation) OldAuditResultID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditResultID: %w", err)
	}
	return oldValue.AuditResultID, nil
}

// ResetAuditResultID resets all changes to the "audit_result_id" field.
func (m *ComplianceViolationMutation) ResetAuditResultID() {
	m.audit_result = nil
}

// SetRuleID sets the "rule_id" field.
func (m *ComplianceViolationMutation) SetRuleID(s string) {
	m.rule_id = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *ComplianceViolationMutation) RuleID() (r string, exists bool) {
	v := m.rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the ComplianceViolation entity.
// If the ComplianceViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceViolationMutation) OldRuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *ComplianceViolationMutation) ResetRuleID() {
	m.rule_id = nil
}

// SetRuleName sets the "rule_name" field.
func (m *ComplianceViolationMutation) SetRuleName(s string) {
	m.rule_name = &s
}

// RuleName returns the value of the "rule_name" field in the mutation.
func (m *ComplianceViolationMutation) RuleName() (r string, exists bool) {
	v := m.rule_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleName returns the old "rule_name" field's value of the ComplianceViolation entity.
// If the ComplianceViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceViolationMutation) OldRuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleName: %w", err)
	}
	return oldValue.RuleName, nil
}

// ResetRuleName resets all changes to the "rule_name" field.
func (m *ComplianceViolationMutation) ResetRuleName() {
	m.rule_name = nil
}

// SetSeverity sets the "severity" field.
func (m *ComplianceViolationMutation) SetSeverity(c complianceviolation.Severity) {
	m.severity = &c
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ComplianceViolationMutation) Severity() (r complianceviolation.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the ComplianceViolation entity.
// If the ComplianceViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceViolationMutation) OldSeverity(ctx context.Context) (v complianceviolation.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ComplianceViolationMutation) ResetSeverity() {
	m.severity = nil
}

// SetDescription sets the "description" field.
func (m *ComplianceViolationMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ComplianceViolationMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ComplianceViolation entity.
// If the ComplianceViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceViolationMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ComplianceViolationMutation) ResetDescription() {
	m.description = nil
}

// SetTimestampInCall sets the "timestamp_in_call" field.
func (m *ComplianceViolationMutation) SetTimestampInCall(f float64) {
	m.timestamp_in_call = &f
	m.addtimestamp_in_call = nil
}

// TimestampInCall returns the value of the "timestamp_in_call" field in the mutation.
func (m *ComplianceViolationMutation) TimestampInCall() (r float64, exists bool) {
	v := m.timestamp_in_call
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestampInCall returns the old "timestamp_in_call" field's value of the ComplianceViolation entity.
// If the ComplianceViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceViolationMutation) OldTimestampInCall(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestampInCall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestampInCall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestampInCall: %w", err)
	}
	return oldValue.TimestampInCall, nil
}

// AddTimestampInCall adds f to the "timestamp_in_call" field.
func (m *ComplianceViolationMutation) AddTimestampInCall(f float64) {
	if m.addtimestamp_in_call != nil {
		*m.addtimestamp_in_call += f
	} else {
		m.addtimestamp_in_call = &f
	}
}

// AddedTimestampInCall returns the value that was added to the "timestamp_in_call" field in this mutation.
func (m *ComplianceViolationMutation) AddedTimestampInCall() (r float64, exists bool) {
	v := m.addtimestamp_in_call
	if v == nil {
		return
	}
	return *v, true
}

// ClearTimestampInCall clears the value of the "timestamp_in_call" field.
func (m *ComplianceViolationMutation) ClearTimestampInCall() {
	m.timestamp_in_call = nil
	m.addtimestamp_in_call = nil
	m.clearedFields[complianceviolation.FieldTimestampInCall] = struct{}{}
}

// TimestampInCallCleared returns if the "timestamp_in_call" field was cleared in this mutation.
func (m *ComplianceViolationMutation) TimestampInCallCleared() bool {
	_, ok := m.clearedFields[complianceviolation.FieldTimestampInCall]
	return ok
}

// ResetTimestampInCall resets all changes to the "timestamp_in_call" field.
func (m *ComplianceViolationMutation) ResetTimestampInCall() {
	m.timestamp_in_call = nil
	m.addtimestamp_in_call = nil
	delete(m.clearedFields, complianceviolation.FieldTimestampInCall)
}

// SetEvidence sets the "evidence" field.
func (m *ComplianceViolationMutation) SetEvidence(s string) {
	m.evidence = &s
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *ComplianceViolationMutation) Evidence() (r string, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the ComplianceViolation entity.
// If the ComplianceViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceViolationMutation) OldEvidence(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ClearEvidence clears the value of the "evidence" field.
func (m *ComplianceViolationMutation) ClearEvidence() {
	m.evidence = nil
	m.clearedFields[complianceviolation.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *ComplianceViolationMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[complianceviolation.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *ComplianceViolationMutation) ResetEvidence() {
	m.evidence = nil
	delete(m.clearedFields, complianceviolation.FieldEvidence)
}

// ClearAuditResult clears the "audit_result" edge to the AuditResult entity.
func (m *ComplianceViolationMutation) ClearAuditResult() {
	m.clearedaudit_result = true
	m.clearedFields[complianceviolation.FieldAuditResultID] = struct{}{}
}

// AuditResultCleared reports if the "audit_result" edge to the AuditResult entity was cleared.
func (m *ComplianceViolationMutation) AuditResultCleared() bool {
	return m.clearedaudit_result
}

// AuditResultIDs returns the "audit_result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditResultID instead. It exists only for internal usage by the builders.
func (m *ComplianceViolationMutation) AuditResultIDs() (ids []string) {
	if id := m.audit_result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuditResult resets all changes to the "audit_result" edge.
func (m *ComplianceViolationMutation) ResetAuditResult() {
	m.audit_result = nil
	m.clearedaudit_result = false
}

// Where appends a list predicates to the ComplianceViolationMutation builder.
func (m *ComplianceViolationMutation) Where(ps ...predicate.ComplianceViolation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ComplianceViolationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ComplianceViolationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ComplianceViolation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ComplianceViolationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ComplianceViolationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ComplianceViolation).
func (m *ComplianceViolationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ComplianceViolationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.audit_result != nil {
		fields = append(fields, complianceviolation.FieldAuditResultID)
	}
	if m.rule_id != nil {
		fields = append(fields, complianceviolation.FieldRuleID)
	}
	if m.rule_name != nil {
		fields = append(fields, complianceviolation.FieldRuleName)
	}
	if m.severity != nil {
		fields = append(fields, complianceviolation.FieldSeverity)
	}
	if m.description != nil {
		fields = append(fields, complianceviolation.FieldDescription)
	}
	if m.timestamp_in_call != nil {
		fields = append(fields, complianceviolation.FieldTimestampInCall)
	}
	if m.evidence != nil {
		fields = append(fields, complianceviolation.FieldEvidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ComplianceViolationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case complianceviolation.FieldAuditResultID:
		return m.AuditResultID()
	case complianceviolation.FieldRuleID:
		return m.RuleID()
	case complianceviolation.FieldRuleName:
		return m.RuleName()
	case complianceviolation.FieldSeverity:
		return m.Severity()
	case complianceviolation.FieldDescription:
		return m.Description()
	case complianceviolation.FieldTimestampInCall:
		return m.TimestampInCall()
	case complianceviolation.FieldEvidence:
		return m.Evidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ComplianceViolationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case complianceviolation.FieldAuditResultID:
		return m.OldAuditResultID(ctx)
	case complianceviolation.FieldRuleID:
		return m.OldRuleID(ctx)
	case complianceviolation.FieldRuleName:
		return m.OldRuleName(ctx)
	case complianceviolation.FieldSeverity:
		return m.OldSeverity(ctx)
	case complianceviolation.FieldDescription:
		return m.OldDescription(ctx)
	case complianceviolation.FieldTimestampInCall:
		return m.OldTimestampInCall(ctx)
	case complianceviolation.FieldEvidence:
		return m.OldEvidence(ctx)
	}
	return nil, fmt.Errorf("unknown ComplianceViolation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComplianceViolationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case complianceviolation.FieldAuditResultID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditResultID(v)
		return nil
	case complianceviolation.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case complianceviolation.FieldRuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleName(v)
		return nil
	case complianceviolation.FieldSeverity:
		v, ok := value.(complianceviolation.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case complianceviolation.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case complianceviolation.FieldTimestampInCall:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestampInCall(v)
		return nil
	case complianceviolation.FieldEvidence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	}
	return fmt.Errorf("unknown ComplianceViolation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ComplianceViolationMutation) AddedFields() []string {
	var fields []string
	if m.addtimestamp_in_call != nil {
		fields = append(fields, complianceviolation.FieldTimestampInCall)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ComplianceViolationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case complianceviolation.FieldTimestampInCall:
		return m.AddedTimestampInCall()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComplianceViolationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case complianceviolation.FieldTimestampInCall:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimestampInCall(v)
		return nil
	}
	return fmt.Errorf("unknown ComplianceViolation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ComplianceViolationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(complianceviolation.FieldTimestampInCall) {
		fields = append(fields, complianceviolation.FieldTimestampInCall)
	}
	if m.FieldCleared(complianceviolation.FieldEvidence) {
		fields = append(fields, complianceviolation.FieldEvidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ComplianceViolationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ComplianceViolationMutation) ClearField(name string) error {
	switch name {
	case complianceviolation.FieldTimestampInCall:
		m.ClearTimestampInCall()
		return nil
	case complianceviolation.FieldEvidence:
		m.ClearEvidence()
		return nil
	}
	return fmt.Errorf("unknown ComplianceViolation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ComplianceViolationMutation) ResetField(name string) error {
	switch name {
	case complianceviolation.FieldAuditResultID:
		m.ResetAuditResultID()
		return nil
	case complianceviolation.FieldRuleID:
		m.ResetRuleID()
		return nil
	case complianceviolation.FieldRuleName:
		m.ResetRuleName()
		return nil
	case complianceviolation.FieldSeverity:
		m.ResetSeverity()
		return nil
	case complianceviolation.FieldDescription:
		m.ResetDescription()
		return nil
	case complianceviolation.FieldTimestampInCall:
		m.ResetTimestampInCall()
		return nil
	case complianceviolation.FieldEvidence:
		m.ResetEvidence()
		return nil
	}
	return fmt.Errorf("unknown ComplianceViolation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ComplianceViolationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit_result != nil {
		edges = append(edges, complianceviolation.EdgeAuditResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ComplianceViolationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case complianceviolation.EdgeAuditResult:
		if id := m.audit_result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ComplianceViolationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ComplianceViolationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ComplianceViolationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit_result {
		edges = append(edges, complianceviolation.EdgeAuditResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ComplianceViolationMutation) EdgeCleared(name string) bool {
	switch name {
	case complianceviolation.EdgeAuditResult:
		return m.clearedaudit_result
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ComplianceViolationMutation) ClearEdge(name string) error {
	switch name {
	case complianceviolation.EdgeAuditResult:
		m.ClearAuditResult()
		return nil
	}
	return fmt.Errorf("unknown ComplianceViolation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ComplianceViolationMutation) ResetEdge(name string) error {
	switch name {
	case complianceviolation.EdgeAuditResult:
		m.ResetAuditResult()
		return nil
	}
	return fmt.Errorf("unknown ComplianceViolation edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op                Op
	typ               string
	id                *string
	call_id           *string
	notification_type *string
	recipient         *string
	channel           *notification.Channel
	subject           *string
	body              *string
	priority          *notification.Priority
	status            *notification.Status
	sent_at           *time.Time
	error_message     *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Notification, error)
	predicates        []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCallID sets the "call_id" field.
func (m *NotificationMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *NotificationMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ResetCallID resets all changes to the "call_id" field.
func (m *NotificationMutation) ResetCallID() {
	m.call_id = nil
}

// SetNotificationType sets the "notification_type" field.
func (m *NotificationMutation) SetNotificationType(s string) {
	m.notification_type = &s
}

// NotificationType returns the value of the "notification_type" field in the mutation.
func (m *NotificationMutation) NotificationType() (r string, exists bool) {
	v := m.notification_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationType returns the old "notification_type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldNotificationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationType: %w", err)
	}
	return oldValue.NotificationType, nil
}

// ResetNotificationType resets all changes to the "notification_type" field.
func (m *NotificationMutation) ResetNotificationType() {
	m.notification_type = nil
}

// SetRecipient sets the "recipient" field.
func (m *NotificationMutation) SetRecipient(s string) {
	m.recipient = &s
}

// Recipient returns the value of the "recipient" field in the mutation.
func (m *NotificationMutation) Recipient() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipient returns the old "recipient" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRecipient(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipient: %w", err)
	}
	return oldValue.Recipient, nil
}

// ResetRecipient resets all changes to the "recipient" field.
func (m *NotificationMutation) ResetRecipient() {
	m.recipient = nil
}

// SetChannel sets the "channel" field.
func (m *NotificationMutation) SetChannel(n notification.Channel) {
	m.channel = &n
}

// Channel returns the value of the "channel" field in the mutation.
func (m *NotificationMutation) Channel() (r notification.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldChannel(ctx context.Context) (v notification.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *NotificationMutation) ResetChannel() {
	m.channel = nil
}

// SetSubject sets the "subject" field.
func (m *NotificationMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *NotificationMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *NotificationMutation) ResetSubject() {
	m.subject = nil
}

// SetBody sets the "body" field.
func (m *NotificationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NotificationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *NotificationMutation) ResetBody() {
	m.body = nil
}

// SetPriority sets the "priority" field.
func (m *NotificationMutation) SetPriority(n notification.Priority) {
	m.priority = &n
}

// Priority returns the value of the "priority" field in the mutation.
func (m *NotificationMutation) Priority() (r notification.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldPriority(ctx context.Context) (v notification.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *NotificationMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *NotificationMutation) SetStatus(n notification.Status) {
	m.status = &n
}

// Status returns the value of the "status" field in the mutation.
func (m *NotificationMutation) Status() (r notification.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldStatus(ctx context.Context) (v notification.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *NotificationMutation) ResetStatus() {
	m.status = nil
}

// SetSentAt sets the "sent_at" field.
func (m *NotificationMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *NotificationMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *NotificationMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[notification.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *NotificationMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *NotificationMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, notification.FieldSentAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *NotificationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *NotificationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *NotificationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[notification.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *NotificationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[notification.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *NotificationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, notification.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.call_id != nil {
		fields = append(fields, notification.FieldCallID)
	}
	if m.notification_type != nil {
		fields = append(fields, notification.FieldNotificationType)
	}
	if m.recipient != nil {
		fields = append(fields, notification.FieldRecipient)
	}
	if m.channel != nil {
		fields = append(fields, notification.FieldChannel)
	}
	if m.subject != nil {
		fields = append(fields, notification.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, notification.FieldBody)
	}
	if m.priority != nil {
		fields = append(fields, notification.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, notification.FieldStatus)
	}
	if m.sent_at != nil {
		fields = append(fields, notification.FieldSentAt)
	}
	if m.error_message != nil {
		fields = append(fields, notification.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCallID:
		return m.CallID()
	case notification.FieldNotificationType:
		return m.NotificationType()
	case notification.FieldRecipient:
		return m.Recipient()
	case notification.FieldChannel:
		return m.Channel()
	case notification.FieldSubject:
		return m.Subject()
	case notification.FieldBody:
		return m.Body()
	case notification.FieldPriority:
		return m.Priority()
	case notification.FieldStatus:
		return m.Status()
	case notification.FieldSentAt:
		return m.SentAt()
	case notification.FieldErrorMessage:
		return m.ErrorMessage()
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCallID:
		return m.OldCallID(ctx)
	case notification.FieldNotificationType:
		return m.OldNotificationType(ctx)
	case notification.FieldRecipient:
		return m.OldRecipient(ctx)
	case notification.FieldChannel:
		return m.OldChannel(ctx)
	case notification.FieldSubject:
		return m.OldSubject(ctx)
	case notification.FieldBody:
		return m.OldBody(ctx)
	case notification.FieldPriority:
		return m.OldPriority(ctx)
	case notification.FieldStatus:
		return m.OldStatus(ctx)
	case notification.FieldSentAt:
		return m.OldSentAt(ctx)
	case notification.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case notification.FieldNotificationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationType(v)
		return nil
	case notification.FieldRecipient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipient(v)
		return nil
	case notification.FieldChannel:
		v, ok := value.(notification.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case notification.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case notification.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case notification.FieldPriority:
		v, ok := value.(notification.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case notification.FieldStatus:
		v, ok := value.(notification.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case notification.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case notification.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldSentAt) {
		fields = append(fields, notification.FieldSentAt)
	}
	if m.FieldCleared(notification.FieldErrorMessage) {
		fields = append(fields, notification.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldSentAt:
		m.ClearSentAt()
		return nil
	case notification.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCallID:
		m.ResetCallID()
		return nil
	case notification.FieldNotificationType:
		m.ResetNotificationType()
		return nil
	case notification.FieldRecipient:
		m.ResetRecipient()
		return nil
	case notification.FieldChannel:
		m.ResetChannel()
		return nil
	case notification.FieldSubject:
		m.ResetSubject()
		return nil
	case notification.FieldBody:
		m.ResetBody()
		return nil
	case notification.FieldPriority:
		m.ResetPriority()
		return nil
	case notification.FieldStatus:
		m.ResetStatus()
		return nil
	case notification.FieldSentAt:
		m.ResetSentAt()
		return nil
	case notification.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// SentimentAnalysisMutation represents an operation that mutates the SentimentAnalysis nodes in the graph.
type SentimentAnalysisMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	call_id                  *string
	overall_sentiment        *sentimentanalysis.OverallSentiment
	sentiment_score          *float64
	addsentiment_score       *float64
	escalation_detected      *bool
	escalation_details       *map[string]float64
	segment_sentiments       *[]map[string]interface{}
	appendsegment_sentiments []map[string]interface{}
	processing_time_ms       *int64
	addprocessing_time_ms    *int64
	event_id                 *string
	created_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*SentimentAnalysis, error)
	predicates               []predicate.SentimentAnalysis
}

var _ ent.Mutation = (*SentimentAnalysisMutation)(nil)

// sentimentanalysisOption allows management of the mutation configuration using functional options.
type sentimentanalysisOption func(*SentimentAnalysisMutation)

// newSentimentAnalysisMutation creates new mutation for the SentimentAnalysis entity.
func newSentimentAnalysisMutation(c config, op Op, opts ...sentimentanalysisOption) *SentimentAnalysisMutation {
	m := &SentimentAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeSentimentAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSentimentAnalysisID sets the ID field of the mutation.
func withSentimentAnalysisID(id string) sentimentanalysisOption {
	return func(m *SentimentAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *SentimentAnalysis
		)
		m.oldValue = func(ctx context.Context) (*SentimentAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SentimentAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSentimentAnalysis sets the old SentimentAnalysis of the mutation.
func withSentimentAnalysis(node *SentimentAnalysis) sentimentanalysisOption {
	return func(m *SentimentAnalysisMutation) {
		m.oldValue = func(context.Context) (*SentimentAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SentimentAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SentimentAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SentimentAnalysis entities.
func (m *SentimentAnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SentimentAnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SentimentAnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SentimentAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCallID sets the "call_id" field.
func (m *SentimentAnalysisMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *SentimentAnalysisMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the SentimentAnalysis entity.
// If the SentimentAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentimentAnalysisMutation) OldCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ResetCallID resets all changes to the "call_id" field.
func (m *SentimentAnalysisMutation) ResetCallID() {
	m.call_id = nil
}

// SetOverallSentiment sets the "overall_sentiment" field.
func (m *SentimentAnalysisMutation) SetOverallSentiment(ss sentimentanalysis.OverallSentiment) {
	m.overall_sentiment = &ss
}

// OverallSentiment returns the value of the "overall_sentiment" field in the mutation.
func (m *SentimentAnalysisMutation) OverallSentiment() (r sentimentanalysis.OverallSentiment, exists bool) {
	v := m.overall_sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallSentiment returns the old "overall_sentiment" field's value of the SentimentAnalysis entity.
// If the SentimentAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentimentAnalysisMutation) OldOverallSentiment(ctx context.Context) (v sentimentanalysis.OverallSentiment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallSentiment: %w", err)
	}
	return oldValue.OverallSentiment, nil
}

// ResetOverallSentiment resets all changes to the "overall_sentiment" field.
func (m *SentimentAnalysisMutation) ResetOverallSentiment() {
	m.overall_sentiment = nil
}

// SetSentimentScore sets the "sentiment_score" field.
func (m *SentimentAnalysisMutation) SetSentimentScore(f float64) {
	m.sentiment_score = &f
	m.addsentiment_score = nil
}

// SentimentScore returns the value of the "sentiment_score" field in the mutation.
func (m *SentimentAnalysisMutation) SentimentScore() (r float64, exists bool) {
	v := m.sentiment_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSentimentScore returns the old "sentiment_score" field's value of the SentimentAnalysis entity.
// If the SentimentAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentimentAnalysisMutation) OldSentimentScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentimentScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentimentScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentimentScore: %w", err)
	}
	return oldValue.SentimentScore, nil
}

// AddSentimentScore adds f to the "sentiment_score" field.
func (m *SentimentAnalysisMutation) AddSentimentScore(f float64) {
	if m.addsentiment_score != nil {
		*m.addsentiment_score += f
	} else {
		m.addsentiment_score = &f
	}
}

// AddedSentimentScore returns the value that was added to the "sentiment_score" field in this mutation.
func (m *SentimentAnalysisMutation) AddedSentimentScore() (r float64, exists bool) {
	v := m.addsentiment_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentimentScore resets all changes to the "sentiment_score" field.
func (m *SentimentAnalysisMutation) ResetSentimentScore() {
	m.sentiment_score = nil
	m.addsentiment_score = nil
}

// SetEscalationDetected sets the "escalation_detected" field.
func (m *SentimentAnalysisMutation) SetEscalationDetected(b bool) {
	m.escalation_detected = &b
}

// EscalationDetected returns the value of the "escalation_detected" field in the mutation.
func (m *SentimentAnalysisMutation) EscalationDetected() (r bool, exists bool) {
	v := m.escalation_detected
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationDetected returns the old "escalation_detected" field's value of the SentimentAnalysis entity.
// If the SentimentAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentimentAnalysisMutation) OldEscalationDetected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationDetected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationDetected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationDetected: %w", err)
	}
	return oldValue.EscalationDetected, nil
}

// ResetEscalationDetected resets all changes to the "escalation_detected" field.
func (m *SentimentAnalysisMutation) ResetEscalationDetected() {
	m.escalation_detected = nil
}

// SetEscalationDetails sets the "escalation_details" field.
func (m *SentimentAnalysisMutation) SetEscalationDetails(value map[string]float64) {
	m.escalation_details = &value
}

// EscalationDetails returns the value of the "escalation_details" field in the mutation.
func (m *SentimentAnalysisMutation) EscalationDetails() (r map[string]float64, exists bool) {
	v := m.escalation_details
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationDetails returns the old "escalation_details" field's value of the SentimentAnalysis entity.
// If the SentimentAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentimentAnalysisMutation) OldEscalationDetails(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationDetails: %w", err)
	}
	return oldValue.EscalationDetails, nil
}

// ClearEscalationDetails clears the value of the "escalation_details" field.
func (m *SentimentAnalysisMutation) ClearEscalationDetails() {
	m.escalation_details = nil
	m.clearedFields[sentimentanalysis.FieldEscalationDetails] = struct{}{}
}

// EscalationDetailsCleared returns if the "escalation_details" field was cleared in this mutation.
func (m *SentimentAnalysisMutation) EscalationDetailsCleared() bool {
	_, ok := m.clearedFields[sentimentanalysis.FieldEscalationDetails]
	return ok
}

// ResetEscalationDetails resets all changes to the "escalation_details" field.
func (m *SentimentAnalysisMutation) ResetEscalationDetails() {
	m.escalation_details = nil
	delete(m.clearedFields, sentimentanalysis.FieldEscalationDetails)
}

// SetSegmentSentiments sets the "segment_sentiments" field.
func (m *SentimentAnalysisMutation) SetSegmentSentiments(value []map[string]interface{}) {
	m.segment_sentiments = &value
	m.appendsegment_sentiments = nil
}

// SegmentSentiments returns the value of the "segment_sentiments" field in the mutation.
func (m *SentimentAnalysisMutation) SegmentSentiments() (r []map[string]interface{}, exists bool) {
	v := m.segment_sentiments
	if v == nil {
		return
	}
	return *v, true
}

// OldSegmentSentiments returns the old "segment_sentiments" field's value of the SentimentAnalysis entity.
// If the SentimentAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentimentAnalysisMutation) OldSegmentSentiments(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegmentSentiments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegmentSentiments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegmentSentiments: %w", err)
	}
	return oldValue.SegmentSentiments, nil
}

// AppendSegmentSentiments adds value to the "segment_sentiments" field.
func (m *SentimentAnalysisMutation) AppendSegmentSentiments(value []map[string]interface{}) {
	m.appendsegment_sentiments = append(m.appendsegment_sentiments, value...)
}

// AppendedSegmentSentiments returns the list of values that were appended to the "segment_sentiments" field in this mutation.
func (m *SentimentAnalysisMutation) AppendedSegmentSentiments() ([]map[string]interface{}, bool) {
	if len(m.appendsegment_sentiments) == 0 {
		return nil, false
	}
	return m.appendsegment_sentiments, true
}

// ClearSegmentSentiments clears the value of the "segment_sentiments" field.
func (m *SentimentAnalysisMutation) ClearSegmentSentiments() {
	m.segment_sentiments = nil
	m.appendsegment_sentiments = nil
	m.clearedFields[sentimentanalysis.FieldSegmentSentiments] = struct{}{}
}

// SegmentSentimentsCleared returns if the "segment_sentiments" field was cleared in this mutation.
func (m *SentimentAnalysisMutation) SegmentSentimentsCleared() bool {
	_, ok := m.clearedFields[sentimentanalysis.FieldSegmentSentiments]
	return ok
}

// ResetSegmentSentiments resets all changes to the "segment_sentiments" field.
func (m *SentimentAnalysisMutation) ResetSegmentSentiments() {
	m.segment_sentiments = nil
	m.appendsegment_sentiments = nil
	delete(m.clearedFields, sentimentanalysis.FieldSegmentSentiments)
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (m *SentimentAnalysisMutation) SetProcessingTimeMs(i int64) {
	m.processing_time_ms = &i
	m.addprocessing_time_ms = nil
}

// ProcessingTimeMs returns the value of the "processing_time_ms" field in the mutation.
func (m *SentimentAnalysisMutation) ProcessingTimeMs() (r int64, exists bool) {
	v := m.processing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeMs returns the old "processing_time_ms" field's value of the SentimentAnalysis entity.
// If the SentimentAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentimentAnalysisMutation) OldProcessingTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeMs: %w", err)
	}
	return oldValue.ProcessingTimeMs, nil
}

// AddProcessingTimeMs adds i to the "processing_time_ms" field.
func (m *SentimentAnalysisMutation) AddProcessingTimeMs(i int64) {
	if m.addprocessing_time_ms != nil {
		*m.addprocessing_time_ms += i
	} else {
		m.addprocessing_time_ms = &i
	}
}

// AddedProcessingTimeMs returns the value that was added to the "processing_time_ms" field in this mutation.
func (m *SentimentAnalysisMutation) AddedProcessingTimeMs() (r int64, exists bool) {
	v := m.addprocessing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingTimeMs resets all changes to the "processing_time_ms" field.
func (m *SentimentAnalysisMutation) ResetProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
}

// SetEventID sets the "event_id" field.
func (m *SentimentAnalysisMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *SentimentAnalysisMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the SentimentAnalysis entity.
// If the SentimentAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentimentAnalysisMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *SentimentAnalysisMutation) ResetEventID() {
	m.event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SentimentAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SentimentAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SentimentAnalysis entity.
// If the SentimentAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentimentAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SentimentAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SentimentAnalysisMutation builder.
func (m *SentimentAnalysisMutation) Where(ps ...predicate.SentimentAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SentimentAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SentimentAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SentimentAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SentimentAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SentimentAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SentimentAnalysis).
func (m *SentimentAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SentimentAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.call_id != nil {
		fields = append(fields, sentimentanalysis.FieldCallID)
	}
	if m.overall_sentiment != nil {
		fields = append(fields, sentimentanalysis.FieldOverallSentiment)
	}
	if m.sentiment_score != nil {
		fields = append(fields, sentimentanalysis.FieldSentimentScore)
	}
	if m.escalation_detected != nil {
		fields = append(fields, sentimentanalysis.FieldEscalationDetected)
	}
	if m.escalation_details != nil {
		fields = append(fields, sentimentanalysis.FieldEscalationDetails)
	}
	if m.segment_sentiments != nil {
		fields = append(fields, sentimentanalysis.FieldSegmentSentiments)
	}
	if m.processing_time_ms != nil {
		fields = append(fields, sentimentanalysis.FieldProcessingTimeMs)
	}
	if m.event_id != nil {
		fields = append(fields, sentimentanalysis.FieldEventID)
	}
	if m.created_at != nil {
		fields = append(fields, sentimentanalysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SentimentAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sentimentanalysis.FieldCallID:
		return m.CallID()
	case sentimentanalysis.FieldOverallSentiment:
		return m.OverallSentiment()
	case sentimentanalysis.FieldSentimentScore:
		return m.SentimentScore()
	case sentimentanalysis.FieldEscalationDetected:
		return m.EscalationDetected()
	case sentimentanalysis.FieldEscalationDetails:
		return m.EscalationDetails()
	case sentimentanalysis.FieldSegmentSentiments:
		return m.SegmentSentiments()
	case sentimentanalysis.FieldProcessingTimeMs:
		return m.ProcessingTimeMs()
	case sentimentanalysis.FieldEventID:
		return m.EventID()
	case sentimentanalysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SentimentAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sentimentanalysis.FieldCallID:
		return m.OldCallID(ctx)
	case sentimentanalysis.FieldOverallSentiment:
		return m.OldOverallSentiment(ctx)
	case sentimentanalysis.FieldSentimentScore:
		return m.OldSentimentScore(ctx)
	case sentimentanalysis.FieldEscalationDetected:
		return m.OldEscalationDetected(ctx)
	case sentimentanalysis.FieldEscalationDetails:
		return m.OldEscalationDetails(ctx)
	case sentimentanalysis.FieldSegmentSentiments:
		return m.OldSegmentSentiments(ctx)
	case sentimentanalysis.FieldProcessingTimeMs:
		return m.OldProcessingTimeMs(ctx)
	case sentimentanalysis.FieldEventID:
		return m.OldEventID(ctx)
	case sentimentanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SentimentAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SentimentAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sentimentanalysis.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case sentimentanalysis.FieldOverallSentiment:
		v, ok := value.(sentimentanalysis.OverallSentiment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallSentiment(v)
		return nil
	case sentimentanalysis.FieldSentimentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentimentScore(v)
		return nil
	case sentimentanalysis.FieldEscalationDetected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationDetected(v)
		return nil
	case sentimentanalysis.FieldEscalationDetails:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationDetails(v)
		return nil
	case sentimentanalysis.FieldSegmentSentiments:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegmentSentiments(v)
		return nil
	case sentimentanalysis.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeMs(v)
		return nil
	case sentimentanalysis.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case sentimentanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SentimentAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SentimentAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addsentiment_score != nil {
		fields = append(fields, sentimentanalysis.FieldSentimentScore)
	}
	if m.addprocessing_time_ms != nil {
		fields = append(fields, sentimentanalysis.FieldProcessingTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SentimentAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sentimentanalysis.FieldSentimentScore:
		return m.AddedSentimentScore()
	case sentimentanalysis.FieldProcessingTimeMs:
		return m.AddedProcessingTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SentimentAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sentimentanalysis.FieldSentimentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentimentScore(v)
		return nil
	case sentimentanalysis.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown SentimentAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SentimentAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sentimentanalysis.FieldEscalationDetails) {
		fields = append(fields, sentimentanalysis.FieldEscalationDetails)
	}
	if m.FieldCleared(sentimentanalysis.FieldSegmentSentiments) {
		fields = append(fields, sentimentanalysis.FieldSegmentSentiments)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SentimentAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SentimentAnalysisMutation) ClearField(name string) error {
	switch name {
	case sentimentanalysis.FieldEscalationDetails:
		m.ClearEscalationDetails()
		return nil
	case sentimentanalysis.FieldSegmentSentiments:
		m.ClearSegmentSentiments()
		return nil
	}
	return fmt.Errorf("unknown SentimentAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SentimentAnalysisMutation) ResetField(name string) error {
	switch name {
	case sentimentanalysis.FieldCallID:
		m.ResetCallID()
		return nil
	case sentimentanalysis.FieldOverallSentiment:
		m.ResetOverallSentiment()
		return nil
	case sentimentanalysis.FieldSentimentScore:
		m.ResetSentimentScore()
		return nil
	case sentimentanalysis.FieldEscalationDetected:
		m.ResetEscalationDetected()
		return nil
	case sentimentanalysis.FieldEscalationDetails:
		m.ResetEscalationDetails()
		return nil
	case sentimentanalysis.FieldSegmentSentiments:
		m.ResetSegmentSentiments()
		return nil
	case sentimentanalysis.FieldProcessingTimeMs:
		m.ResetProcessingTimeMs()
		return nil
	case sentimentanalysis.FieldEventID:
		m.ResetEventID()
		return nil
	case sentimentanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SentimentAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SentimentAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SentimentAnalysisMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SentimentAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SentimentAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SentimentAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SentimentAnalysisMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SentimentAnalysisMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SentimentAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SentimentAnalysisMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SentimentAnalysis edge %s", name)
}

// TranscriptSegmentMutation represents an operation that mutates the TranscriptSegment nodes in the graph.
type TranscriptSegmentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	position             *int
	addposition          *int
	speaker              *transcriptsegment.Speaker
	start_time           *float64
	addstart_time        *float64
	end_time             *float64
	addend_time          *float64
	text                 *string
	confidence           *float64
	addconfidence        *float64
	clearedFields        map[string]struct{}
	transcription        *string
	clearedtranscription bool
	done                 bool
	oldValue             func(context.Context) (*TranscriptSegment, error)
	predicates           []predicate.TranscriptSegment
}

var _ ent.Mutation = (*TranscriptSegmentMutation)(nil)

// transcriptsegmentOption allows management of the mutation configuration using functional options.
type transcriptsegmentOption func(*TranscriptSegmentMutation)

// newTranscriptSegmentMutation creates new mutation for the TranscriptSegment entity.
func newTranscriptSegmentMutation(c config, op Op, opts ...transcriptsegmentOption) *TranscriptSegmentMutation {
	m := &TranscriptSegmentMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscriptSegment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptSegmentID sets the ID field of the mutation.
func withTranscriptSegmentID(id string) transcriptsegmentOption {
	return func(m *TranscriptSegmentMutation) {
		var (
			err   error
			once  sync.Once
			value *TranscriptSegment
		)
		m.oldValue = func(ctx context.Context) (*TranscriptSegment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TranscriptSegment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscriptSegment sets the old TranscriptSegment of the mutation.
func withTranscriptSegment(node *TranscriptSegment) transcriptsegmentOption {
	return func(m *TranscriptSegmentMutation) {
		m.oldValue = func(context.Context) (*TranscriptSegment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptSegmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptSegmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TranscriptSegment entities.
func (m *TranscriptSegmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptSegmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptSegmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TranscriptSegment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTranscriptionID sets the "transcription_id" field.
func (m *TranscriptSegmentMutation) SetTranscriptionID(s string) {
	m.transcription = &s
}

// TranscriptionID returns the value of the "transcription_id" field in the mutation.
func (m *TranscriptSegmentMutation) TranscriptionID() (r string, exists bool) {
	v := m.transcription
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptionID returns the old "transcription_id" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldTranscriptionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptionID: %w", err)
	}
	return oldValue.TranscriptionID, nil
}

// ResetTranscriptionID resets all changes to the "transcription_id" field.
func (m *TranscriptSegmentMutation) ResetTranscriptionID() {
	m.transcription = nil
}

// SetPosition sets the "position" field.
func (m *TranscriptSegmentMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *TranscriptSegmentMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *TranscriptSegmentMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *TranscriptSegmentMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *TranscriptSegmentMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetSpeaker sets the "speaker" field.
func (m *TranscriptSegmentMutation) SetSpeaker(t transcriptsegment.Speaker) {
	m.speaker = &t
}

// Speaker returns the value of the "speaker" field in the mutation.
func (m *TranscriptSegmentMutation) Speaker() (r transcriptsegment.Speaker, exists bool) {
	v := m.speaker
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeaker returns the old "speaker" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldSpeaker(ctx context.Context) (v transcriptsegment.Speaker, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeaker is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeaker requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeaker: %w", err)
	}
	return oldValue.Speaker, nil
}

// ResetSpeaker resets all changes to the "speaker" field.
func (m *TranscriptSegmentMutation) ResetSpeaker() {
	m.speaker = nil
}

// SetStartTime sets the "start_time" field.
func (m *TranscriptSegmentMutation) SetStartTime(f float64) {
	m.start_time = &f
	m.addstart_time = nil
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *TranscriptSegmentMutation) StartTime() (r float64, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldStartTime(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// AddStartTime adds f to the "start_time" field.
func (m *TranscriptSegmentMutation) AddStartTime(f float64) {
	if m.addstart_time != nil {
		*m.addstart_time += f
	} else {
		m.addstart_time = &f
	}
}

// AddedStartTime returns the value that was added to the "start_time" field in this mutation.
func (m *TranscriptSegmentMutation) AddedStartTime() (r float64, exists bool) {
	v := m.addstart_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *TranscriptSegmentMutation) ResetStartTime() {
	m.start_time = nil
	m.addstart_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *TranscriptSegmentMutation) SetEndTime(f float64) {
	m.end_time = &f
	m.addend_time = nil
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *TranscriptSegmentMutation) EndTime() (r float64, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldEndTime(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// AddEndTime adds f to the "end_time" field.
func (m *TranscriptSegmentMutation) AddEndTime(f float64) {
	if m.addend_time != nil {
		*m.addend_time += f
	} else {
		m.addend_time = &f
	}
}

// AddedEndTime returns the value that was added to the "end_time" field in this mutation.
func (m *TranscriptSegmentMutation) AddedEndTime() (r float64, exists bool) {
	v := m.addend_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *TranscriptSegmentMutation) ResetEndTime() {
	m.end_time = nil
	m.addend_time = nil
}

// SetText sets the "text" field.
func (m *TranscriptSegmentMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *TranscriptSegmentMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *TranscriptSegmentMutation) ResetText() {
	m.text = nil
}

// SetConfidence sets the "confidence" field.
func (m *TranscriptSegmentMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TranscriptSegmentMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the TranscriptSegment entity.
// If the TranscriptSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptSegmentMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *TranscriptSegmentMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TranscriptSegmentMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *TranscriptSegmentMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[transcriptsegment.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *TranscriptSegmentMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[transcriptsegment.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TranscriptSegmentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, transcriptsegment.FieldConfidence)
}

// ClearTranscription clears the "transcription" edge to the Transcription entity.
func (m *TranscriptSegmentMutation) ClearTranscription() {
	m.clearedtranscription = true
	m.clearedFields[transcriptsegment.FieldTranscriptionID] = struct{}{}
}

// TranscriptionCleared reports if the "transcription" edge to the Transcription entity was cleared.
func (m *TranscriptSegmentMutation) TranscriptionCleared() bool {
	return m.clearedtranscription
}

// TranscriptionIDs returns the "transcription" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TranscriptionID instead. It exists only for internal usage by the builders.
func (m *TranscriptSegmentMutation) TranscriptionIDs() (ids []string) {
	if id := m.transcription; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTranscription resets all changes to the "transcription" edge.
func (m *TranscriptSegmentMutation) ResetTranscription() {
	m.transcription = nil
	m.clearedtranscription = false
}

// Where appends a list predicates to the TranscriptSegmentMutation builder.
func (m *TranscriptSegmentMutation) Where(ps ...predicate.TranscriptSegment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptSegmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptSegmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TranscriptSegment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptSegmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptSegmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TranscriptSegment).
func (m *TranscriptSegmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptSegmentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.transcription != nil {
		fields = append(fields, transcriptsegment.FieldTranscriptionID)
	}
	if m.position != nil {
		fields = append(fields, transcriptsegment.FieldPosition)
	}
	if m.speaker != nil {
		fields = append(fields, transcriptsegment.FieldSpeaker)
	}
	if m.start_time != nil {
		fields = append(fields, transcriptsegment.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, transcriptsegment.FieldEndTime)
	}
	if m.text != nil {
		fields = append(fields, transcriptsegment.FieldText)
	}
	if m.confidence != nil {
		fields = append(fields, transcriptsegment.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptSegmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcriptsegment.FieldTranscriptionID:
		return m.TranscriptionID()
	case transcriptsegment.FieldPosition:
		return m.Position()
	case transcriptsegment.FieldSpeaker:
		return m.Speaker()
	case transcriptsegment.FieldStartTime:
		return m.StartTime()
	case transcriptsegment.FieldEndTime:
		return m.EndTime()
	case transcriptsegment.FieldText:
		return m.Text()
	case transcriptsegment.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptSegmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcriptsegment.FieldTranscriptionID:
		return m.OldTranscriptionID(ctx)
	case transcriptsegment.FieldPosition:
		return m.OldPosition(ctx)
	case transcriptsegment.FieldSpeaker:
		return m.OldSpeaker(ctx)
	case transcriptsegment.FieldStartTime:
		return m.OldStartTime(ctx)
	case transcriptsegment.FieldEndTime:
		return m.OldEndTime(ctx)
	case transcriptsegment.FieldText:
		return m.OldText(ctx)
	case transcriptsegment.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown TranscriptSegment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptSegmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcriptsegment.FieldTranscriptionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptionID(v)
		return nil
	case transcriptsegment.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case transcriptsegment.FieldSpeaker:
		v, ok := value.(transcriptsegment.Speaker)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeaker(v)
		return nil
	case transcriptsegment.FieldStartTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case transcriptsegment.FieldEndTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case transcriptsegment.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case transcriptsegment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptSegment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptSegmentMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, transcriptsegment.FieldPosition)
	}
	if m.addstart_time != nil {
		fields = append(fields, transcriptsegment.FieldStartTime)
	}
	if m.addend_time != nil {
		fields = append(fields, transcriptsegment.FieldEndTime)
	}
	if m.addconfidence != nil {
		fields = append(fields, transcriptsegment.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptSegmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcriptsegment.FieldPosition:
		return m.AddedPosition()
	case transcriptsegment.FieldStartTime:
		return m.AddedStartTime()
	case transcriptsegment.FieldEndTime:
		return m.AddedEndTime()
	case transcriptsegment.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptSegmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcriptsegment.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case transcriptsegment.FieldStartTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartTime(v)
		return nil
	case transcriptsegment.FieldEndTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndTime(v)
		return nil
	case transcriptsegment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptSegment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptSegmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcriptsegment.FieldConfidence) {
		fields = append(fields, transcriptsegment.FieldConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptSegmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptSegmentMutation) ClearField(name string) error {
	switch name {
	case transcriptsegment.FieldConfidence:
		m.ClearConfidence()
		return nil
	}
	return fmt.Errorf("unknown TranscriptSegment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptSegmentMutation) ResetField(name string) error {
	switch name {
	case transcriptsegment.FieldTranscriptionID:
		m.ResetTranscriptionID()
		return nil
	case transcriptsegment.FieldPosition:
		m.ResetPosition()
		return nil
	case transcriptsegment.FieldSpeaker:
		m.ResetSpeaker()
		return nil
	case transcriptsegment.FieldStartTime:
		m.ResetStartTime()
		return nil
	case transcriptsegment.FieldEndTime:
		m.ResetEndTime()
		return nil
	case transcriptsegment.FieldText:
		m.ResetText()
		return nil
	case transcriptsegment.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown TranscriptSegment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptSegmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.transcription != nil {
		edges = append(edges, transcriptsegment.EdgeTranscription)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptSegmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcriptsegment.EdgeTranscription:
		if id := m.transcription; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptSegmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptSegmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptSegmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtranscription {
		edges = append(edges, transcriptsegment.EdgeTranscription)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptSegmentMutation) EdgeCleared(name string) bool {
	switch name {
	case transcriptsegment.EdgeTranscription:
		return m.clearedtranscription
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptSegmentMutation) ClearEdge(name string) error {
	switch name {
	case transcriptsegment.EdgeTranscription:
		m.ClearTranscription()
		return nil
	}
	return fmt.Errorf("unknown TranscriptSegment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptSegmentMutation) ResetEdge(name string) error {
	switch name {
	case transcriptsegment.EdgeTranscription:
		m.ResetTranscription()
		return nil
	}
	return fmt.Errorf("unknown TranscriptSegment edge %s", name)
}

// TranscriptionMutation represents an operation that mutates the Transcription nodes in the graph.
type TranscriptionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	call_id         *string
	full_text       *string
	language        *string
	confidence      *float64
	addconfidence   *float64
	word_count      *int
	addword_count   *int
	event_id        *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	segments        map[string]struct{}
	removedsegments map[string]struct{}
	clearedsegments bool
	done            bool
	oldValue        func(context.Context) (*Transcription, error)
	predicates      []predicate.Transcription
}

var _ ent.Mutation = (*TranscriptionMutation)(nil)

// transcriptionOption allows management of the mutation configuration using functional options.
type transcriptionOption func(*TranscriptionMutation)

// newTranscriptionMutation creates new mutation for the Transcription entity.
func newTranscriptionMutation(c config, op Op, opts ...transcriptionOption) *TranscriptionMutation {
	m := &TranscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptionID sets the ID field of the mutation.
func withTranscriptionID(id string) transcriptionOption {
	return func(m *TranscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *Transcription
		)
		m.oldValue = func(ctx context.Context) (*Transcription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transcription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscription sets the old Transcription of the mutation.
func withTranscription(node *Transcription) transcriptionOption {
	return func(m *TranscriptionMutation) {
		m.oldValue = func(context.Context) (*Transcription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transcription entities.
func (m *TranscriptionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transcription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCallID sets the "call_id" field.
func (m *TranscriptionMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *TranscriptionMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ResetCallID resets all changes to the "call_id" field.
func (m *TranscriptionMutation) ResetCallID() {
	m.call_id = nil
}

// SetFullText sets the "full_text" field.
func (m *TranscriptionMutation) SetFullText(s string) {
	m.full_text = &s
}

// FullText returns the value of the "full_text" field in the mutation.
func (m *TranscriptionMutation) FullText() (r string, exists bool) {
	v := m.full_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFullText returns the old "full_text" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldFullText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullText: %w", err)
	}
	return oldValue.FullText, nil
}

// ResetFullText resets all changes to the "full_text" field.
func (m *TranscriptionMutation) ResetFullText() {
	m.full_text = nil
}

// SetLanguage sets the "language" field.
func (m *TranscriptionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *TranscriptionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *TranscriptionMutation) ResetLanguage() {
	m.language = nil
}

// SetConfidence sets the "confidence" field.
func (m *TranscriptionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TranscriptionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *TranscriptionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TranscriptionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TranscriptionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetWordCount sets the "word_count" field.
func (m *TranscriptionMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *TranscriptionMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *TranscriptionMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *TranscriptionMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *TranscriptionMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetEventID sets the "event_id" field.
func (m *TranscriptionMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *TranscriptionMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *TranscriptionMutation) ResetEventID() {
	m.event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TranscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transcription entity.
// If the Transcription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSegmentIDs adds the "segments" edge to the TranscriptSegment entity by ids.
func (m *TranscriptionMutation) AddSegmentIDs(ids ...string) {
	if m.segments == nil {
		m.segments = make(map[string]struct{})
	}
	for i := range ids {
		m.segments[ids[i]] = struct{}{}
	}
}

// ClearSegments clears the "segments" edge to the TranscriptSegment entity.
func (m *TranscriptionMutation) ClearSegments() {
	m.clearedsegments = true
}

// SegmentsCleared reports if the "segments" edge to the TranscriptSegment entity was cleared.
func (m *TranscriptionMutation) SegmentsCleared() bool {
	return m.clearedsegments
}

// RemoveSegmentIDs removes the "segments" edge to the TranscriptSegment entity by IDs.
func (m *TranscriptionMutation) RemoveSegmentIDs(ids ...string) {
	if m.removedsegments == nil {
		m.removedsegments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.segments, ids[i])
		m.removedsegments[ids[i]] = struct{}{}
	}
}

// RemovedSegments returns the removed IDs of the "segments" edge to the TranscriptSegment entity.
func (m *TranscriptionMutation) RemovedSegmentsIDs() (ids []string) {
	for id := range m.removedsegments {
		ids = append(ids, id)
	}
	return
}

// SegmentsIDs returns the "segments" edge IDs in the mutation.
func (m *TranscriptionMutation) SegmentsIDs() (ids []string) {
	for id := range m.segments {
		ids = append(ids, id)
	}
	return
}

// ResetSegments resets all changes to the "segments" edge.
func (m *TranscriptionMutation) ResetSegments() {
	m.segments = nil
	m.clearedsegments = false
	m.removedsegments = nil
}

// Where appends a list predicates to the TranscriptionMutation builder.
func (m *TranscriptionMutation) Where(ps ...predicate.Transcription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transcription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transcription).
func (m *TranscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.call_id != nil {
		fields = append(fields, transcription.FieldCallID)
	}
	if m.full_text != nil {
		fields = append(fields, transcription.FieldFullText)
	}
	if m.language != nil {
		fields = append(fields, transcription.FieldLanguage)
	}
	if m.confidence != nil {
		fields = append(fields, transcription.FieldConfidence)
	}
	if m.word_count != nil {
		fields = append(fields, transcription.FieldWordCount)
	}
	if m.event_id != nil {
		fields = append(fields, transcription.FieldEventID)
	}
	if m.created_at != nil {
		fields = append(fields, transcription.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcription.FieldCallID:
		return m.CallID()
	case transcription.FieldFullText:
		return m.FullText()
	case transcription.FieldLanguage:
		return m.Language()
	case transcription.FieldConfidence:
		return m.Confidence()
	case transcription.FieldWordCount:
		return m.WordCount()
	case transcription.FieldEventID:
		return m.EventID()
	case transcription.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcription.FieldCallID:
		return m.OldCallID(ctx)
	case transcription.FieldFullText:
		return m.OldFullText(ctx)
	case transcription.FieldLanguage:
		return m.OldLanguage(ctx)
	case transcription.FieldConfidence:
		return m.OldConfidence(ctx)
	case transcription.FieldWordCount:
		return m.OldWordCount(ctx)
	case transcription.FieldEventID:
		return m.OldEventID(ctx)
	case transcription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transcription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcription.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case transcription.FieldFullText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullText(v)
		return nil
	case transcription.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case transcription.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case transcription.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case transcription.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case transcription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transcription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, transcription.FieldConfidence)
	}
	if m.addword_count != nil {
		fields = append(fields, transcription.FieldWordCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcription.FieldConfidence:
		return m.AddedConfidence()
	case transcription.FieldWordCount:
		return m.AddedWordCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcription.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case transcription.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	}
	return fmt.Errorf("unknown Transcription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Transcription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptionMutation) ResetField(name string) error {
	switch name {
	case transcription.FieldCallID:
		m.ResetCallID()
		return nil
	case transcription.FieldFullText:
		m.ResetFullText()
		return nil
	case transcription.FieldLanguage:
		m.ResetLanguage()
		return nil
	case transcription.FieldConfidence:
		m.ResetConfidence()
		return nil
	case transcription.FieldWordCount:
		m.ResetWordCount()
		return nil
	case transcription.FieldEventID:
		m.ResetEventID()
		return nil
	case transcription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transcription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.segments != nil {
		edges = append(edges, transcription.EdgeSegments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcription.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.segments))
		for id := range m.segments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsegments != nil {
		edges = append(edges, transcription.EdgeSegments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case transcription.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.removedsegments))
		for id := range m.removedsegments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsegments {
		edges = append(edges, transcription.EdgeSegments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case transcription.EdgeSegments:
		return m.clearedsegments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Transcription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptionMutation) ResetEdge(name string) error {
	switch name {
	case transcription.EdgeSegments:
		m.ResetSegments()
		return nil
	}
	return fmt.Errorf("unknown Transcription edge %s", name)
}

// VocInsightMutation represents an operation that mutates the VocInsight nodes in the graph.
type VocInsightMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	call_id                 *string
	primary_intent          *vocinsight.PrimaryIntent
	topics                  *[]string
	appendtopics            []string
	keywords                *[]string
	appendkeywords          []string
	customer_satisfaction   *vocinsight.CustomerSatisfaction
	predicted_churn_risk    *float64
	addpredicted_churn_risk *float64
	actionable_items        *[]string
	appendactionable_items  []string
	summary                 *string
	event_id                *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*VocInsight, error)
	predicates              []predicate.VocInsight
}

var _ ent.Mutation = (*VocInsightMutation)(nil)

// vocinsightOption allows management of the mutation configuration using functional options.
type vocinsightOption func(*VocInsightMutation)

// newVocInsightMutation creates new mutation for the VocInsight entity.
func newVocInsightMutation(c config, op Op, opts ...vocinsightOption) *VocInsightMutation {
	m := &VocInsightMutation{
		config:        c,
		op:            op,
		typ:           TypeVocInsight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVocInsightID sets the ID field of the mutation.
func withVocInsightID(id string) vocinsightOption {
	return func(m *VocInsightMutation) {
		var (
			err   error
			once  sync.Once
			value *VocInsight
		)
		m.oldValue = func(ctx context.Context) (*VocInsight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VocInsight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVocInsight sets the old VocInsight of the mutation.
func withVocInsight(node *VocInsight) vocinsightOption {
	return func(m *VocInsightMutation) {
		m.oldValue = func(context.Context) (*VocInsight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VocInsightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VocInsightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VocInsight entities.
func (m *VocInsightMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VocInsightMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VocInsightMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VocInsight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCallID sets the "call_id" field.
func (m *VocInsightMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *VocInsightMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the VocInsight entity.
// If the VocInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocInsightMutation) OldCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ResetCallID resets all changes to the "call_id" field.
func (m *VocInsightMutation) ResetCallID() {
	m.call_id = nil
}

// SetPrimaryIntent sets the "primary_intent" field.
func (m *VocInsightMutation) SetPrimaryIntent(vi vocinsight.PrimaryIntent) {
	m.primary_intent = &vi
}

// PrimaryIntent returns the value of the "primary_intent" field in the mutation.
func (m *VocInsightMutation) PrimaryIntent() (r vocinsight.PrimaryIntent, exists bool) {
	v := m.primary_intent
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryIntent returns the old "primary_intent" field's value of the VocInsight entity.
// If the VocInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocInsightMutation) OldPrimaryIntent(ctx context.Context) (v vocinsight.PrimaryIntent, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryIntent: %w", err)
	}
	return oldValue.PrimaryIntent, nil
}

// ResetPrimaryIntent resets all changes to the "primary_intent" field.
func (m *VocInsightMutation) ResetPrimaryIntent() {
	m.primary_intent = nil
}

// SetTopics sets the "topics" field.
func (m *VocInsightMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *VocInsightMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the VocInsight entity.
// If the VocInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocInsightMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *VocInsightMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *VocInsightMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *VocInsightMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[vocinsight.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *VocInsightMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[vocinsight.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *VocInsightMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, vocinsight.FieldTopics)
}

// SetKeywords sets the "keywords" field.
func (m *VocInsightMutation) SetKeywords(s []string) {
	m.keywords = &s
	m.appendkeywords = nil
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *VocInsightMutation) Keywords() (r []string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the VocInsight entity.
// If the VocInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocInsightMutation) OldKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// AppendKeywords adds s to the "keywords" field.
func (m *VocInsightMutation) AppendKeywords(s []string) {
	m.appendkeywords = append(m.appendkeywords, s...)
}

// AppendedKeywords returns the list of values that were appended to the "keywords" field in this mutation.
func (m *VocInsightMutation) AppendedKeywords() ([]string, bool) {
	if len(m.appendkeywords) == 0 {
		return nil, false
	}
	return m.appendkeywords, true
}

// ClearKeywords clears the value of the "keywords" field.
func (m *VocInsightMutation) ClearKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	m.clearedFields[vocinsight.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *VocInsightMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[vocinsight.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *VocInsightMutation) ResetKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	delete(m.clearedFields, vocinsight.FieldKeywords)
}

// SetCustomerSatisfaction sets the "customer_satisfaction" field.
func (m *VocInsightMutation) SetCustomerSatisfaction(vs vocinsight.CustomerSatisfaction) {
	m.customer_satisfaction = &vs
}

// CustomerSatisfaction returns the value of the "customer_satisfaction" field in the mutation.
func (m *VocInsightMutation) CustomerSatisfaction() (r vocinsight.CustomerSatisfaction, exists bool) {
	v := m.customer_satisfaction
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerSatisfaction returns the old "customer_satisfaction" field's value of the VocInsight entity.
// If the VocInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocInsightMutation) OldCustomerSatisfaction(ctx context.Context) (v vocinsight.CustomerSatisfaction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerSatisfaction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerSatisfaction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerSatisfaction: %w", err)
	}
	return oldValue.CustomerSatisfaction, nil
}

// ResetCustomerSatisfaction resets all changes to the "customer_satisfaction" field.
func (m *VocInsightMutation) ResetCustomerSatisfaction() {
	m.customer_satisfaction = nil
}

// SetPredictedChurnRisk sets the "predicted_churn_risk" field.
func (m *VocInsightMutation) SetPredictedChurnRisk(f float64) {
	m.predicted_churn_risk = &f
	m.addpredicted_churn_risk = nil
}

// PredictedChurnRisk returns the value of the "predicted_churn_risk" field in the mutation.
func (m *VocInsightMutation) PredictedChurnRisk() (r float64, exists bool) {
	v := m.predicted_churn_risk
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictedChurnRisk returns the old "predicted_churn_risk" field's value of the VocInsight entity.
// If the VocInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocInsightMutation) OldPredictedChurnRisk(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictedChurnRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictedChurnRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictedChurnRisk: %w", err)
	}
	return oldValue.PredictedChurnRisk, nil
}

// AddPredictedChurnRisk adds f to the "predicted_churn_risk" field.
func (m *VocInsightMutation) AddPredictedChurnRisk(f float64) {
	if m.addpredicted_churn_risk != nil {
		*m.addpredicted_churn_risk += f
	} else {
		m.addpredicted_churn_risk = &f
	}
}

// AddedPredictedChurnRisk returns the value that was added to the "predicted_churn_risk" field in this mutation.
func (m *VocInsightMutation) AddedPredictedChurnRisk() (r float64, exists bool) {
	v := m.addpredicted_churn_risk
	if v == nil {
		return
	}
	return *v, true
}

// ResetPredictedChurnRisk resets all changes to the "predicted_churn_risk" field.
func (m *VocInsightMutation) ResetPredictedChurnRisk() {
	m.predicted_churn_risk = nil
	m.addpredicted_churn_risk = nil
}

// SetActionableItems sets the "actionable_items" field.
func (m *VocInsightMutation) SetActionableItems(s []string) {
	m.actionable_items = &s
	m.appendactionable_items = nil
}

// ActionableItems returns the value of the "actionable_items" field in the mutation.
func (m *VocInsightMutation) ActionableItems() (r []string, exists bool) {
	v := m.actionable_items
	if v == nil {
		return
	}
	return *v, true
}

// OldActionableItems returns the old "actionable_items" field's value of the VocInsight entity.
// If the VocInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocInsightMutation) OldActionableItems(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionableItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionableItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionableItems: %w", err)
	}
	return oldValue.ActionableItems, nil
}

// AppendActionableItems adds s to the "actionable_items" field.
func (m *VocInsightMutation) AppendActionableItems(s []string) {
	m.appendactionable_items = append(m.appendactionable_items, s...)
}

// AppendedActionableItems returns the list of values that were appended to the "actionable_items" field in this mutation.
func (m *VocInsightMutation) AppendedActionableItems() ([]string, bool) {
	if len(m.appendactionable_items) == 0 {
		return nil, false
	}
	return m.appendactionable_items, true
}

// ClearActionableItems clears the value of the "actionable_items" field.
func (m *VocInsightMutation) ClearActionableItems() {
	m.actionable_items = nil
	m.appendactionable_items = nil
	m.clearedFields[vocinsight.FieldActionableItems] = struct{}{}
}

// ActionableItemsCleared returns if the "actionable_items" field was cleared in this mutation.
func (m *VocInsightMutation) ActionableItemsCleared() bool {
	_, ok := m.clearedFields[vocinsight.FieldActionableItems]
	return ok
}

// ResetActionableItems resets all changes to the "actionable_items" field.
func (m *VocInsightMutation) ResetActionableItems() {
	m.actionable_items = nil
	m.appendactionable_items = nil
	delete(m.clearedFields, vocinsight.FieldActionableItems)
}

// SetSummary sets the "summary" field.
func (m *VocInsightMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *VocInsightMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the VocInsight entity.
// If the VocInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocInsightMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *VocInsightMutation) ResetSummary() {
	m.summary = nil
}

// SetEventID sets the "event_id" field.
func (m *VocInsightMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *VocInsightMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the VocInsight entity.
// If the VocInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocInsightMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *VocInsightMutation) ResetEventID() {
	m.event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VocInsightMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VocInsightMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VocInsight entity.
// If the VocInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocInsightMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VocInsightMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VocInsightMutation builder.
func (m *VocInsightMutation) Where(ps ...predicate.VocInsight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VocInsightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VocInsightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VocInsight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VocInsightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VocInsightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VocInsight).
func (m *VocInsightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VocInsightMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.call_id != nil {
		fields = append(fields, vocinsight.FieldCallID)
	}
	if m.primary_intent != nil {
		fields = append(fields, vocinsight.FieldPrimaryIntent)
	}
	if m.topics != nil {
		fields = append(fields, vocinsight.FieldTopics)
	}
	if m.keywords != nil {
		fields = append(fields, vocinsight.FieldKeywords)
	}
	if m.customer_satisfaction != nil {
		fields = append(fields, vocinsight.FieldCustomerSatisfaction)
	}
	if m.predicted_churn_risk != nil {
		fields = append(fields, vocinsight.FieldPredictedChurnRisk)
	}
	if m.actionable_items != nil {
		fields = append(fields, vocinsight.FieldActionableItems)
	}
	if m.summary != nil {
		fields = append(fields, vocinsight.FieldSummary)
	}
	if m.event_id != nil {
		fields = append(fields, vocinsight.FieldEventID)
	}
	if m.created_at != nil {
		fields = append(fields, vocinsight.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VocInsightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vocinsight.FieldCallID:
		return m.CallID()
	case vocinsight.FieldPrimaryIntent:
		return m.PrimaryIntent()
	case vocinsight.FieldTopics:
		return m.Topics()
	case vocinsight.FieldKeywords:
		return m.Keywords()
	case vocinsight.FieldCustomerSatisfaction:
		return m.CustomerSatisfaction()
	case vocinsight.FieldPredictedChurnRisk:
		return m.PredictedChurnRisk()
	case vocinsight.FieldActionableItems:
		return m.ActionableItems()
	case vocinsight.FieldSummary:
		return m.Summary()
	case vocinsight.FieldEventID:
		return m.EventID()
	case vocinsight.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VocInsightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vocinsight.FieldCallID:
		return m.OldCallID(ctx)
	case vocinsight.FieldPrimaryIntent:
		return m.OldPrimaryIntent(ctx)
	case vocinsight.FieldTopics:
		return m.OldTopics(ctx)
	case vocinsight.FieldKeywords:
		return m.OldKeywords(ctx)
	case vocinsight.FieldCustomerSatisfaction:
		return m.OldCustomerSatisfaction(ctx)
	case vocinsight.FieldPredictedChurnRisk:
		return m.OldPredictedChurnRisk(ctx)
	case vocinsight.FieldActionableItems:
		return m.OldActionableItems(ctx)
	case vocinsight.FieldSummary:
		return m.OldSummary(ctx)
	case vocinsight.FieldEventID:
		return m.OldEventID(ctx)
	case vocinsight.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VocInsight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocInsightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vocinsight.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case vocinsight.FieldPrimaryIntent:
		v, ok := value.(vocinsight.PrimaryIntent)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryIntent(v)
		return nil
	case vocinsight.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case vocinsight.FieldKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case vocinsight.FieldCustomerSatisfaction:
		v, ok := value.(vocinsight.CustomerSatisfaction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerSatisfaction(v)
		return nil
	case vocinsight.FieldPredictedChurnRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictedChurnRisk(v)
		return nil
	case vocinsight.FieldActionableItems:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionableItems(v)
		return nil
	case vocinsight.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case vocinsight.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case vocinsight.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VocInsight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VocInsightMutation) AddedFields() []string {
	var fields []string
	if m.addpredicted_churn_risk != nil {
		fields = append(fields, vocinsight.FieldPredictedChurnRisk)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VocInsightMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vocinsight.FieldPredictedChurnRisk:
		return m.AddedPredictedChurnRisk()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocInsightMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vocinsight.FieldPredictedChurnRisk:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPredictedChurnRisk(v)
		return nil
	}
	return fmt.Errorf("unknown VocInsight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VocInsightMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vocinsight.FieldTopics) {
		fields = append(fields, vocinsight.FieldTopics)
	}
	if m.FieldCleared(vocinsight.FieldKeywords) {
		fields = append(fields, vocinsight.FieldKeywords)
	}
	if m.FieldCleared(vocinsight.FieldActionableItems) {
		fields = append(fields, vocinsight.FieldActionableItems)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VocInsightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VocInsightMutation) ClearField(name string) error {
	switch name {
	case vocinsight.FieldTopics:
		m.ClearTopics()
		return nil
	case vocinsight.FieldKeywords:
		m.ClearKeywords()
		return nil
	case vocinsight.FieldActionableItems:
		m.ClearActionableItems()
		return nil
	}
	return fmt.Errorf("unknown VocInsight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VocInsightMutation) ResetField(name string) error {
	switch name {
	case vocinsight.FieldCallID:
		m.ResetCallID()
		return nil
	case vocinsight.FieldPrimaryIntent:
		m.ResetPrimaryIntent()
		return nil
	case vocinsight.FieldTopics:
		m.ResetTopics()
		return nil
	case vocinsight.FieldKeywords:
		m.ResetKeywords()
		return nil
	case vocinsight.FieldCustomerSatisfaction:
		m.ResetCustomerSatisfaction()
		return nil
	case vocinsight.FieldPredictedChurnRisk:
		m.ResetPredictedChurnRisk()
		return nil
	case vocinsight.FieldActionableItems:
		m.ResetActionableItems()
		return nil
	case vocinsight.FieldSummary:
		m.ResetSummary()
		return nil
	case vocinsight.FieldEventID:
		m.ResetEventID()
		return nil
	case vocinsight.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VocInsight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VocInsightMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VocInsightMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VocInsightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VocInsightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VocInsightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VocInsightMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VocInsightMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VocInsight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VocInsightMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VocInsight edge %s", name)
}
