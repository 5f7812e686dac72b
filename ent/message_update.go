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
	"github.com/omniboxhq/omnibox/ent/message"
	"github.com/omniboxhq/omnibox/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *MessageUpdate) SetConversationID(v string) *MessageUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableConversationID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *MessageUpdate) SetDirection(v message.Direction) *MessageUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableDirection(v *message.Direction) *MessageUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *MessageUpdate) SetAgentID(v string) *MessageUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableAgentID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *MessageUpdate) ClearAgentID() *MessageUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageUpdate) SetBody(v string) *MessageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableBody(v *string) *MessageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *MessageUpdate) ClearBody() *MessageUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetMediaRef sets the "media_ref" field.
func (_u *MessageUpdate) SetMediaRef(v string) *MessageUpdate {
	_u.mutation.SetMediaRef(v)
	return _u
}

// SetNillableMediaRef sets the "media_ref" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableMediaRef(v *string) *MessageUpdate {
	if v != nil {
		_u.SetMediaRef(*v)
	}
	return _u
}

// ClearMediaRef clears the value of the "media_ref" field.
func (_u *MessageUpdate) ClearMediaRef() *MessageUpdate {
	_u.mutation.ClearMediaRef()
	return _u
}

// SetMediaType sets the "media_type" field.
func (_u *MessageUpdate) SetMediaType(v string) *MessageUpdate {
	_u.mutation.SetMediaType(v)
	return _u
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableMediaType(v *string) *MessageUpdate {
	if v != nil {
		_u.SetMediaType(*v)
	}
	return _u
}

// ClearMediaType clears the value of the "media_type" field.
func (_u *MessageUpdate) ClearMediaType() *MessageUpdate {
	_u.mutation.ClearMediaType()
	return _u
}

// SetProviderMessageID sets the "provider_message_id" field.
func (_u *MessageUpdate) SetProviderMessageID(v string) *MessageUpdate {
	_u.mutation.SetProviderMessageID(v)
	return _u
}

// SetNillableProviderMessageID sets the "provider_message_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableProviderMessageID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetProviderMessageID(*v)
	}
	return _u
}

// ClearProviderMessageID clears the value of the "provider_message_id" field.
func (_u *MessageUpdate) ClearProviderMessageID() *MessageUpdate {
	_u.mutation.ClearProviderMessageID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MessageUpdate) SetStatus(v message.Status) *MessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableStatus(v *message.Status) *MessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *MessageUpdate) SetErrorCode(v string) *MessageUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableErrorCode(v *string) *MessageUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *MessageUpdate) ClearErrorCode() *MessageUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MessageUpdate) SetErrorMessage(v string) *MessageUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableErrorMessage(v *string) *MessageUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MessageUpdate) ClearErrorMessage() *MessageUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MessageUpdate) SetUpdatedAt(v time.Time) *MessageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MessageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := message.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := message.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Message.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := message.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Message.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(message.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(message.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(message.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(message.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(message.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(message.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.MediaRef(); ok {
		_spec.SetField(message.FieldMediaRef, field.TypeString, value)
	}
	if _u.mutation.MediaRefCleared() {
		_spec.ClearField(message.FieldMediaRef, field.TypeString)
	}
	if value, ok := _u.mutation.MediaType(); ok {
		_spec.SetField(message.FieldMediaType, field.TypeString, value)
	}
	if _u.mutation.MediaTypeCleared() {
		_spec.ClearField(message.FieldMediaType, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderMessageID(); ok {
		_spec.SetField(message.FieldProviderMessageID, field.TypeString, value)
	}
	if _u.mutation.ProviderMessageIDCleared() {
		_spec.ClearField(message.FieldProviderMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(message.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(message.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(message.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(message.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(message.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(message.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *MessageUpdateOne) SetConversationID(v string) *MessageUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableConversationID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *MessageUpdateOne) SetDirection(v message.Direction) *MessageUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableDirection(v *message.Direction) *MessageUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *MessageUpdateOne) SetAgentID(v string) *MessageUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableAgentID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *MessageUpdateOne) ClearAgentID() *MessageUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageUpdateOne) SetBody(v string) *MessageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableBody(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *MessageUpdateOne) ClearBody() *MessageUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetMediaRef sets the "media_ref" field.
func (_u *MessageUpdateOne) SetMediaRef(v string) *MessageUpdateOne {
	_u.mutation.SetMediaRef(v)
	return _u
}

// SetNillableMediaRef sets the "media_ref" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableMediaRef(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetMediaRef(*v)
	}
	return _u
}

// ClearMediaRef clears the value of the "media_ref" field.
func (_u *MessageUpdateOne) ClearMediaRef() *MessageUpdateOne {
	_u.mutation.ClearMediaRef()
	return _u
}

// SetMediaType sets the "media_type" field.
func (_u *MessageUpdateOne) SetMediaType(v string) *MessageUpdateOne {
	_u.mutation.SetMediaType(v)
	return _u
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableMediaType(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetMediaType(*v)
	}
	return _u
}

// ClearMediaType clears the value of the "media_type" field.
func (_u *MessageUpdateOne) ClearMediaType() *MessageUpdateOne {
	_u.mutation.ClearMediaType()
	return _u
}

// SetProviderMessageID sets the "provider_message_id" field.
func (_u *MessageUpdateOne) SetProviderMessageID(v string) *MessageUpdateOne {
	_u.mutation.SetProviderMessageID(v)
	return _u
}

// SetNillableProviderMessageID sets the "provider_message_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableProviderMessageID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetProviderMessageID(*v)
	}
	return _u
}

// ClearProviderMessageID clears the value of the "provider_message_id" field.
func (_u *MessageUpdateOne) ClearProviderMessageID() *MessageUpdateOne {
	_u.mutation.ClearProviderMessageID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MessageUpdateOne) SetStatus(v message.Status) *MessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableStatus(v *message.Status) *MessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *MessageUpdateOne) SetErrorCode(v string) *MessageUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableErrorCode(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *MessageUpdateOne) ClearErrorCode() *MessageUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MessageUpdateOne) SetErrorMessage(v string) *MessageUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableErrorMessage(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MessageUpdateOne) ClearErrorMessage() *MessageUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MessageUpdateOne) SetUpdatedAt(v time.Time) *MessageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MessageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := message.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := message.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Message.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := message.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Message.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(message.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(message.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(message.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(message.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(message.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(message.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.MediaRef(); ok {
		_spec.SetField(message.FieldMediaRef, field.TypeString, value)
	}
	if _u.mutation.MediaRefCleared() {
		_spec.ClearField(message.FieldMediaRef, field.TypeString)
	}
	if value, ok := _u.mutation.MediaType(); ok {
		_spec.SetField(message.FieldMediaType, field.TypeString, value)
	}
	if _u.mutation.MediaTypeCleared() {
		_spec.ClearField(message.FieldMediaType, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderMessageID(); ok {
		_spec.SetField(message.FieldProviderMessageID, field.TypeString, value)
	}
	if _u.mutation.ProviderMessageIDCleared() {
		_spec.ClearField(message.FieldProviderMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(message.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(message.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(message.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(message.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(message.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(message.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
