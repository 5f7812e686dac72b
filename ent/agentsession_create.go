// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omniboxhq/omnibox/ent/agentsession"
)

// AgentSessionCreate is the builder for creating a AgentSession entity.
type AgentSessionCreate struct {
	config
	mutation *AgentSessionMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentSessionCreate) SetAgentID(v string) *AgentSessionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *AgentSessionCreate) SetOrganizationID(v string) *AgentSessionCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetConnectionID sets the "connection_id" field.
func (_c *AgentSessionCreate) SetConnectionID(v string) *AgentSessionCreate {
	_c.mutation.SetConnectionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentSessionCreate) SetStatus(v agentsession.Status) *AgentSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableStatus(v *agentsession.Status) *AgentSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *AgentSessionCreate) SetInstanceID(v string) *AgentSessionCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetConnectedAt sets the "connected_at" field.
func (_c *AgentSessionCreate) SetConnectedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetConnectedAt(v)
	return _c
}

// SetNillableConnectedAt sets the "connected_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableConnectedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetConnectedAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *AgentSessionCreate) SetLastSeenAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableLastSeenAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSessionCreate) SetID(v string) *AgentSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_c *AgentSessionCreate) Mutation() *AgentSessionMutation {
	return _c.mutation
}

// Save creates the AgentSession in the database.
func (_c *AgentSessionCreate) Save(ctx context.Context) (*AgentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSessionCreate) SaveX(ctx context.Context) *AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ConnectedAt(); !ok {
		v := agentsession.DefaultConnectedAt()
		_c.mutation.SetConnectedAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := agentsession.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSessionCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentSession.agent_id"`)}
	}
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "AgentSession.organization_id"`)}
	}
	if _, ok := _c.mutation.ConnectionID(); !ok {
		return &ValidationError{Name: "connection_id", err: errors.New(`ent: missing required field "AgentSession.connection_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "AgentSession.instance_id"`)}
	}
	if _, ok := _c.mutation.ConnectedAt(); !ok {
		return &ValidationError{Name: "connected_at", err: errors.New(`ent: missing required field "AgentSession.connected_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "AgentSession.last_seen_at"`)}
	}
	return nil
}

func (_c *AgentSessionCreate) sqlSave(ctx context.Context) (*AgentSession, error) {
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
			return nil, fmt.Errorf("unexpected AgentSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSessionCreate) createSpec() (*AgentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentsession.Table, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(agentsession.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(agentsession.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.ConnectionID(); ok {
		_spec.SetField(agentsession.FieldConnectionID, field.TypeString, value)
		_node.ConnectionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InstanceID(); ok {
		_spec.SetField(agentsession.FieldInstanceID, field.TypeString, value)
		_node.InstanceID = value
	}
	if value, ok := _c.mutation.ConnectedAt(); ok {
		_spec.SetField(agentsession.FieldConnectedAt, field.TypeTime, value)
		_node.ConnectedAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(agentsession.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	return _node, _spec
}

// AgentSessionCreateBulk is the builder for creating many AgentSession entities in bulk.
type AgentSessionCreateBulk struct {
	config
	err      error
	builders []*AgentSessionCreate
}

// Save creates the AgentSession entities in the database.
func (_c *AgentSessionCreateBulk) Save(ctx context.Context) ([]*AgentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSessionMutation)
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
func (_c *AgentSessionCreateBulk) SaveX(ctx context.Context) []*AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
