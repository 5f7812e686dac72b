// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omniboxhq/omnibox/ent/conversationevent"
	"github.com/omniboxhq/omnibox/ent/predicate"
)

// ConversationEventUpdate is the builder for updating ConversationEvent entities.
type ConversationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationEventMutation
}

// Where appends a list predicates to the ConversationEventUpdate builder.
func (_u *ConversationEventUpdate) Where(ps ...predicate.ConversationEvent) *ConversationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *ConversationEventUpdate) SetConversationID(v string) *ConversationEventUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *ConversationEventUpdate) SetNillableConversationID(v *string) *ConversationEventUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ConversationEventUpdate) SetEventType(v string) *ConversationEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ConversationEventUpdate) SetNillableEventType(v *string) *ConversationEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *ConversationEventUpdate) SetActorID(v string) *ConversationEventUpdate {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *ConversationEventUpdate) SetNillableActorID(v *string) *ConversationEventUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// ClearActorID clears the value of the "actor_id" field.
func (_u *ConversationEventUpdate) ClearActorID() *ConversationEventUpdate {
	_u.mutation.ClearActorID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ConversationEventUpdate) SetMetadata(v map[string]interface{}) *ConversationEventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ConversationEventUpdate) ClearMetadata() *ConversationEventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ConversationEventMutation object of the builder.
func (_u *ConversationEventUpdate) Mutation() *ConversationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConversationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversationevent.Table, conversationevent.Columns, sqlgraph.NewFieldSpec(conversationevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(conversationevent.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(conversationevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(conversationevent.FieldActorID, field.TypeString, value)
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(conversationevent.FieldActorID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(conversationevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(conversationevent.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationEventUpdateOne is the builder for updating a single ConversationEvent entity.
type ConversationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationEventMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *ConversationEventUpdateOne) SetConversationID(v string) *ConversationEventUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *ConversationEventUpdateOne) SetNillableConversationID(v *string) *ConversationEventUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ConversationEventUpdateOne) SetEventType(v string) *ConversationEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ConversationEventUpdateOne) SetNillableEventType(v *string) *ConversationEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *ConversationEventUpdateOne) SetActorID(v string) *ConversationEventUpdateOne {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *ConversationEventUpdateOne) SetNillableActorID(v *string) *ConversationEventUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// ClearActorID clears the value of the "actor_id" field.
func (_u *ConversationEventUpdateOne) ClearActorID() *ConversationEventUpdateOne {
	_u.mutation.ClearActorID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ConversationEventUpdateOne) SetMetadata(v map[string]interface{}) *ConversationEventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ConversationEventUpdateOne) ClearMetadata() *ConversationEventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ConversationEventMutation object of the builder.
func (_u *ConversationEventUpdateOne) Mutation() *ConversationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationEventUpdate builder.
func (_u *ConversationEventUpdateOne) Where(ps ...predicate.ConversationEvent) *ConversationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationEventUpdateOne) Select(field string, fields ...string) *ConversationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationEvent entity.
func (_u *ConversationEventUpdateOne) Save(ctx context.Context) (*ConversationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationEventUpdateOne) SaveX(ctx context.Context) *ConversationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConversationEventUpdateOne) sqlSave(ctx context.Context) (_node *ConversationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversationevent.Table, conversationevent.Columns, sqlgraph.NewFieldSpec(conversationevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationevent.FieldID)
		for _, f := range fields {
			if !conversationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationevent.FieldID {
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
		_spec.SetField(conversationevent.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(conversationevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(conversationevent.FieldActorID, field.TypeString, value)
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(conversationevent.FieldActorID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(conversationevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(conversationevent.FieldMetadata, field.TypeJSON)
	}
	_node = &ConversationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
