package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id                    INTEGER PRIMARY KEY AUTOINCREMENT,
    card_id               TEXT NOT NULL,
    card_name             TEXT,
    run_at                TEXT NOT NULL,
    net_value_cents       INTEGER NOT NULL,
    total_spend_cents     INTEGER NOT NULL,
    total_rewards_cents   REAL NOT NULL,
    effective_return_rate REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_card ON runs(card_id, run_at);
`
