package actions

import (
	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
)

// MaxTasks is the number of kill tasks a character may hold at once.
const MaxTasks = 3

// AcceptTask takes a kill task. Completed tasks are dropped first, so a
// finished task can be taken again.
func AcceptTask(p player.State, cat *content.Catalog, taskID string, now int64) (player.State, event.LogEntry) {
	def, ok := cat.Tasks[taskID]
	if !ok {
		return p, event.Entry(event.Info, now, "Unknown task %q.", taskID)
	}
	m := cat.Monsters[def.MonsterID]
	open := 0
	for _, t := range p.Tasks {
		if t.Done {
			continue
		}
		if t.TaskID == taskID {
			return p, event.Entry(event.Info, now, "You are already hunting %s for that task.", m.Name)
		}
		open++
	}
	if open >= MaxTasks {
		return p, event.Entry(event.Info, now, "You can hold at most %d tasks.", MaxTasks)
	}
	out := p.Clone()
	kept := out.Tasks[:0]
	for _, t := range out.Tasks {
		if !t.Done {
			kept = append(kept, t)
		}
	}
	out.Tasks = append(kept, player.TaskProgress{TaskID: def.ID, MonsterID: def.MonsterID, Required: def.Kills})
	return out, event.Entry(event.Info, now, "New task: kill %d %s.", def.Kills, m.Name)
}

// AbandonTask drops an unfinished task without reward.
func AbandonTask(p player.State, taskID string, now int64) (player.State, event.LogEntry) {
	for i, t := range p.Tasks {
		if t.TaskID == taskID && !t.Done {
			out := p.Clone()
			out.Tasks = append(out.Tasks[:i], out.Tasks[i+1:]...)
			return out, event.Entry(event.Info, now, "Task abandoned.")
		}
	}
	return p, event.Entry(event.Info, now, "You do not have that task.")
}
