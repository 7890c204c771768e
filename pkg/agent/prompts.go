package agent

import "fmt"

// schemaContext describes the one table the SQL generator may query.
// Enforcement is by instruction only; generated SQL is not sandboxed.
const schemaContext = `You have access to a Snowflake table named: PORTFOLIO_DB.ANALYTICS.STG_DAILY_REVENUE
Columns:
- DATE (Date)
- REGION (String) - e.g., 'North', 'South'
- TOTAL_REVENUE (Number)
- TRANSACTION_COUNT (Number)

IMPORTANT: Always use the full table name 'PORTFOLIO_DB.ANALYTICS.STG_DAILY_REVENUE' in your FROM clause.`

func routerPrompt(question string) string {
	return fmt.Sprintf(`You are a classifier. Determine which tool is needed to answer the user's question.

- If the user asks about Policies, Rules, HR, or the Handbook -> reply "SEARCH"
- If the user asks about Sales, Revenue, Data, or Numbers -> reply "SQL"
- Otherwise -> reply "CHAT"

User Question: %s

Reply ONLY with the keyword.`, question)
}

func sqlPrompt(question string) string {
	return fmt.Sprintf(`%s

Generate a valid Snowflake SQL query for: %s.
Return ONLY the SQL string. Do not add markdown or explanations.`, schemaContext, question)
}

func synthesisPrompt(question, context string) string {
	return fmt.Sprintf(`Answer the user question using the Context provided below.
If the context contains the answer, cite it.
If the context is empty or irrelevant, say "I don't know."

Context:
%s

User Question:
%s`, context, question)
}
