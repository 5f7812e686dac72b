// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omniboxhq/omnibox/ent/conversation"
	"github.com/omniboxhq/omnibox/ent/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *ConversationUpdate) SetOrganizationID(v string) *ConversationUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableOrganizationID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *ConversationUpdate) SetChannelID(v string) *ConversationUpdate {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableChannelID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *ConversationUpdate) SetContactID(v string) *ConversationUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableContactID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationUpdate) SetStatus(v conversation.Status) *ConversationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableStatus(v *conversation.Status) *ConversationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *ConversationUpdate) SetAssignedAgentID(v string) *ConversationUpdate {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableAssignedAgentID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *ConversationUpdate) ClearAssignedAgentID() *ConversationUpdate {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetLastMessageAt sets the "last_message_at" field.
func (_u *ConversationUpdate) SetLastMessageAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetLastMessageAt(v)
	return _u
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastMessageAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetLastMessageAt(*v)
	}
	return _u
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (_u *ConversationUpdate) ClearLastMessageAt() *ConversationUpdate {
	_u.mutation.ClearLastMessageAt()
	return _u
}

// SetFirstResponseAt sets the "first_response_at" field.
func (_u *ConversationUpdate) SetFirstResponseAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetFirstResponseAt(v)
	return _u
}

// SetNillableFirstResponseAt sets the "first_response_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableFirstResponseAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetFirstResponseAt(*v)
	}
	return _u
}

// ClearFirstResponseAt clears the value of the "first_response_at" field.
func (_u *ConversationUpdate) ClearFirstResponseAt() *ConversationUpdate {
	_u.mutation.ClearFirstResponseAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdate) SetUpdatedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(conversation.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(conversation.FieldChannelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactID(); ok {
		_spec.SetField(conversation.FieldContactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(conversation.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(conversation.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.LastMessageAt(); ok {
		_spec.SetField(conversation.FieldLastMessageAt, field.TypeTime, value)
	}
	if _u.mutation.LastMessageAtCleared() {
		_spec.ClearField(conversation.FieldLastMessageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FirstResponseAt(); ok {
		_spec.SetField(conversation.FieldFirstResponseAt, field.TypeTime, value)
	}
	if _u.mutation.FirstResponseAtCleared() {
		_spec.ClearField(conversation.FieldFirstResponseAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetOrganizationID sets the "organization_id" field.
func (_u *ConversationUpdateOne) SetOrganizationID(v string) *ConversationUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableOrganizationID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *ConversationUpdateOne) SetChannelID(v string) *ConversationUpdateOne {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableChannelID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *ConversationUpdateOne) SetContactID(v string) *ConversationUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableContactID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationUpdateOne) SetStatus(v conversation.Status) *ConversationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableStatus(v *conversation.Status) *ConversationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *ConversationUpdateOne) SetAssignedAgentID(v string) *ConversationUpdateOne {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableAssignedAgentID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *ConversationUpdateOne) ClearAssignedAgentID() *ConversationUpdateOne {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetLastMessageAt sets the "last_message_at" field.
func (_u *ConversationUpdateOne) SetLastMessageAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetLastMessageAt(v)
	return _u
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastMessageAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastMessageAt(*v)
	}
	return _u
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (_u *ConversationUpdateOne) ClearLastMessageAt() *ConversationUpdateOne {
	_u.mutation.ClearLastMessageAt()
	return _u
}

// SetFirstResponseAt sets the "first_response_at" field.
func (_u *ConversationUpdateOne) SetFirstResponseAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetFirstResponseAt(v)
	return _u
}

// SetNillableFirstResponseAt sets the "first_response_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableFirstResponseAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetFirstResponseAt(*v)
	}
	return _u
}

// ClearFirstResponseAt clears the value of the "first_response_at" field.
func (_u *ConversationUpdateOne) ClearFirstResponseAt() *ConversationUpdateOne {
	_u.mutation.ClearFirstResponseAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdateOne) SetUpdatedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(conversation.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(conversation.FieldChannelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactID(); ok {
		_spec.SetField(conversation.FieldContactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(conversation.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(conversation.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.LastMessageAt(); ok {
		_spec.SetField(conversation.FieldLastMessageAt, field.TypeTime, value)
	}
	if _u.mutation.LastMessageAtCleared() {
		_spec.ClearField(conversation.FieldLastMessageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FirstResponseAt(); ok {
		_spec.SetField(conversation.FieldFirstResponseAt, field.TypeTime, value)
	}
	if _u.mutation.FirstResponseAtCleared() {
		_spec.ClearField(conversation.FieldFirstResponseAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
