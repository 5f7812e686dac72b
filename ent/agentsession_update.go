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
	"github.com/omniboxhq/omnibox/ent/agentsession"
	"github.com/omniboxhq/omnibox/ent/predicate"
)

// AgentSessionUpdate is the builder for updating AgentSession entities.
type AgentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSessionMutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdate) Where(ps ...predicate.AgentSession) *AgentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentSessionUpdate) SetAgentID(v string) *AgentSessionUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableAgentID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *AgentSessionUpdate) SetOrganizationID(v string) *AgentSessionUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableOrganizationID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetConnectionID sets the "connection_id" field.
func (_u *AgentSessionUpdate) SetConnectionID(v string) *AgentSessionUpdate {
	_u.mutation.SetConnectionID(v)
	return _u
}

// SetNillableConnectionID sets the "connection_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableConnectionID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetConnectionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdate) SetStatus(v agentsession.Status) *AgentSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *AgentSessionUpdate) SetInstanceID(v string) *AgentSessionUpdate {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableInstanceID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *AgentSessionUpdate) SetLastSeenAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableLastSeenAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdate) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(agentsession.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(agentsession.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectionID(); ok {
		_spec.SetField(agentsession.FieldConnectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(agentsession.FieldInstanceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(agentsession.FieldLastSeenAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSessionUpdateOne is the builder for updating a single AgentSession entity.
type AgentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSessionMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentSessionUpdateOne) SetAgentID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableAgentID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *AgentSessionUpdateOne) SetOrganizationID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableOrganizationID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetConnectionID sets the "connection_id" field.
func (_u *AgentSessionUpdateOne) SetConnectionID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetConnectionID(v)
	return _u
}

// SetNillableConnectionID sets the "connection_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableConnectionID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetConnectionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdateOne) SetStatus(v agentsession.Status) *AgentSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *AgentSessionUpdateOne) SetInstanceID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableInstanceID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *AgentSessionUpdateOne) SetLastSeenAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableLastSeenAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdateOne) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdateOne) Where(ps ...predicate.AgentSession) *AgentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSessionUpdateOne) Select(field string, fields ...string) *AgentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSession entity.
func (_u *AgentSessionUpdateOne) Save(ctx context.Context) (*AgentSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) SaveX(ctx context.Context) *AgentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AgentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentsession.FieldID)
		for _, f := range fields {
			if !agentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentsession.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(agentsession.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(agentsession.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectionID(); ok {
		_spec.SetField(agentsession.FieldConnectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(agentsession.FieldInstanceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(agentsession.FieldLastSeenAt, field.TypeTime, value)
	}
	_node = &AgentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
