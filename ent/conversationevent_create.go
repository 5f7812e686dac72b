// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omniboxhq/omnibox/ent/conversationevent"
)

// ConversationEventCreate is the builder for creating a ConversationEvent entity.
type ConversationEventCreate struct {
	config
	mutation *ConversationEventMutation
	hooks    []Hook
}

// SetConversationID sets the "conversation_id" field.
func (_c *ConversationEventCreate) SetConversationID(v string) *ConversationEventCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *ConversationEventCreate) SetEventType(v string) *ConversationEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *ConversationEventCreate) SetActorID(v string) *ConversationEventCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_c *ConversationEventCreate) SetNillableActorID(v *string) *ConversationEventCreate {
	if v != nil {
		_c.SetActorID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ConversationEventCreate) SetMetadata(v map[string]interface{}) *ConversationEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationEventCreate) SetCreatedAt(v time.Time) *ConversationEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationEventCreate) SetNillableCreatedAt(v *time.Time) *ConversationEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationEventCreate) SetID(v string) *ConversationEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConversationEventMutation object of the builder.
func (_c *ConversationEventCreate) Mutation() *ConversationEventMutation {
	return _c.mutation
}

// Save creates the ConversationEvent in the database.
func (_c *ConversationEventCreate) Save(ctx context.Context) (*ConversationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationEventCreate) SaveX(ctx context.Context) *ConversationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversationevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationEventCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "ConversationEvent.conversation_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ConversationEvent.event_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConversationEvent.created_at"`)}
	}
	return nil
}

func (_c *ConversationEventCreate) sqlSave(ctx context.Context) (*ConversationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ConversationEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationEventCreate) createSpec() (*ConversationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationevent.Table, sqlgraph.NewFieldSpec(conversationevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(conversationevent.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(conversationevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(conversationevent.FieldActorID, field.TypeString, value)
		_node.ActorID = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(conversationevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversationevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ConversationEventCreateBulk is the builder for creating many ConversationEvent entities in bulk.
type ConversationEventCreateBulk struct {
	config
	err      error
	builders []*ConversationEventCreate
}

// Save creates the ConversationEvent entities in the database.
func (_c *ConversationEventCreateBulk) Save(ctx context.Context) ([]*ConversationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ConversationEventCreateBulk) SaveX(ctx context.Context) []*ConversationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
